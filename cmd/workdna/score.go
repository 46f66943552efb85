package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SAP-F-2025/workdna-service/internal/catalog"
	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/scoring"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
	"github.com/spf13/cobra"
)

type scoreOptions struct {
	catalogFile   string
	jobKey        string
	answersFile   string
	candidateName string
	testID        string
}

//nolint:gochecknoglobals // Cobra boilerplate
var scoreOpts scoreOptions

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers against a job profile",
	Long: `Scores a JSON array of answers against one job profile of a question catalog
and prints the full report as JSON.

Each answer has the shape {"questionId": 1, "selectedOptionIndex": 0, "timeTakenMs": 12000}.

Examples:
  workdna score --catalog questions.json --job "Software Engineer" --answers answers.json
  workdna score --catalog questions.yaml --job "Product Manager" --answers - < answers.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runScore(scoreOpts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreOpts.catalogFile, "catalog", "questions.json", "Question catalog file (JSON or YAML)")
	scoreCmd.Flags().StringVar(&scoreOpts.jobKey, "job", "", "Job profile key to score against")
	scoreCmd.Flags().StringVar(&scoreOpts.answersFile, "answers", "", "Answers JSON file, or - for stdin")
	scoreCmd.Flags().StringVar(&scoreOpts.candidateName, "candidate", "N/A", "Candidate name shown in the report")
	scoreCmd.Flags().StringVar(&scoreOpts.testID, "test-id", "N/A", "Test id shown in the report")
	_ = scoreCmd.MarkFlagRequired("job")
	_ = scoreCmd.MarkFlagRequired("answers")
}

func runScore(opts scoreOptions, stdin io.Reader, out io.Writer) error {
	questionCatalog, err := catalog.Load(opts.catalogFile, validator.New())
	if err != nil {
		return err
	}

	profile, ok := questionCatalog.Profile(opts.jobKey)
	if !ok {
		return fmt.Errorf("%w: job profile %q", scoring.ErrQuestionSetNotFound, opts.jobKey)
	}

	answers, err := readAnswers(opts.answersFile, stdin)
	if err != nil {
		return err
	}

	report, err := scoring.Score(profile.Questions, answers, scoring.ReportContext{
		JobTitle:      opts.jobKey,
		CandidateName: opts.candidateName,
		TestID:        opts.testID,
		PassThreshold: questionCatalog.PassThreshold,
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func readAnswers(path string, stdin io.Reader) ([]models.Answer, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	var answers []models.Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	return answers, nil
}
