package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateService_Login(t *testing.T) {
	env := newTestEnv(t)
	env.addGeneratedTest(t, "k3y9zz", "Software Engineer", testCatalog().JobProfiles["Software Engineer"].Questions)
	svc := env.manager().Candidate()

	tests := []struct {
		name      string
		req       LoginRequest
		wantRole  string
		checkErr  func(error) bool
		wantName  string
		wantError bool
	}{
		{name: "demo key", req: LoginRequest{Name: "Ada", TestID: "test123"}, wantName: "Ada"},
		{name: "generated key assigns role", req: LoginRequest{Name: " Grace ", TestID: "k3y9zz"}, wantName: "Grace", wantRole: "Software Engineer"},
		{name: "unknown key", req: LoginRequest{Name: "Ada", TestID: "nope"}, wantError: true, checkErr: IsUnauthorized},
		{name: "missing name", req: LoginRequest{TestID: "test123"}, wantError: true, checkErr: IsValidation},
		{name: "missing key", req: LoginRequest{Name: "Ada", TestID: "   "}, wantError: true, checkErr: IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			resp, err := svc.Login(context.Background(), &req)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, tt.checkErr(err), "unexpected error kind: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, resp.CandidateName)
			assert.Equal(t, tt.wantRole, resp.AssignedRole)
			assert.Equal(t, 10, resp.TimeLimitMinutes)
		})
	}
}

func TestCandidateService_LoginCustomDemoKey(t *testing.T) {
	env := newTestEnv(t)
	env.deps.Settings.DemoTestKey = "walkthrough"
	svc := NewCandidateService(env.deps)

	_, err := svc.Login(context.Background(), &LoginRequest{Name: "Ada", TestID: "test123"})
	assert.ErrorIs(t, err, ErrInvalidTestKey)

	resp, err := svc.Login(context.Background(), &LoginRequest{Name: "Ada", TestID: "walkthrough"})
	require.NoError(t, err)
	assert.Empty(t, resp.AssignedRole)
}
