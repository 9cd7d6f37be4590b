package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/id"
	"crmdesk/internal/core/session"
	"crmdesk/internal/domain"
)

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name    string
		client  *Client
		wantErr bool
	}{
		{"valid", NewClient("Acme", "billing@acme.example"), false},
		{"missing name", NewClient("", "billing@acme.example"), true},
		{"missing email", NewClient("Acme", ""), true},
		{"malformed email", NewClient("Acme", "not-an-email"), true},
		{"email without tld", NewClient("Acme", "billing@acme"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// fakeClientRepo backs the uniqueness hook tests.
type fakeClientRepo struct {
	byEmail map[string]*Client
}

func (r *fakeClientRepo) Create(_ context.Context, c *Client) error {
	r.byEmail[c.Email] = c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, recID id.ID) (*Client, error) {
	for _, c := range r.byEmail {
		if c.ID == recID {
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("client", recID.String())
}

func (r *fakeClientRepo) Update(_ context.Context, c *Client) error {
	r.byEmail[c.Email] = c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, _ id.ID) error { return nil }

func (r *fakeClientRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Client], error) {
	return domain.ListResult[*Client]{Items: []*Client{}}, nil
}

func (r *fakeClientRepo) Exists(_ context.Context, _ id.ID) (bool, error) { return false, nil }

func (r *fakeClientRepo) FindByEmail(_ context.Context, email string) (*Client, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("client", email)
	}
	return c, nil
}

func TestService_EmailUniquePerOwner(t *testing.T) {
	repo := &fakeClientRepo{byEmail: make(map[string]*Client)}
	svc := NewService(repo, nil)
	ctx := session.WithUser(context.Background(), &session.Session{UserID: "u1"})

	first := NewClient("Acme", "billing@acme.example")
	require.NoError(t, svc.Create(ctx, first))

	dup := NewClient("Acme Again", "billing@acme.example")
	err := svc.Create(ctx, dup)
	require.Error(t, err)

	// updating the existing record with its own email passes
	first.Name = "Acme Corp"
	assert.NoError(t, svc.Update(ctx, first))
}
