package service

import (
	"context"
	"log/slog"

	"github.com/guregu/null/v6"

	"github.com/target/subscription-admin/internal/domain/model"
	apperrors "github.com/target/subscription-admin/internal/errors"
	"github.com/target/subscription-admin/internal/ports"
	"github.com/target/subscription-admin/internal/validate"
)

// PolicyServiceOptions groups dependencies for PolicyService.
type PolicyServiceOptions struct {
	API ports.PoliciesAPI
	// DocumentID selects the published document; zero means model.DefaultPolicyID.
	DocumentID int
	Logger     *slog.Logger
}

// PolicyService reads and edits the legal documents. Content is sanitized in both directions.
type PolicyService struct {
	api    ports.PoliciesAPI
	id     int
	logger *slog.Logger
}

// NewPolicyService constructs a new PolicyService.
func NewPolicyService(opts PolicyServiceOptions) *PolicyService {
	if opts.API == nil {
		panic("PoliciesAPI is required")
	}
	id := opts.DocumentID
	if id <= 0 {
		id = model.DefaultPolicyID
	}
	return &PolicyService{api: opts.API, id: id, logger: componentLogger(opts.Logger, "policies")}
}

// Get fetches a policy document with sanitized content.
func (s *PolicyService) Get(ctx context.Context, kind model.PolicyKind) (model.Policy, error) {
	resp, err := s.api.GetPolicy(ctx, kind, s.id)
	if err != nil {
		return model.Policy{}, apperrors.FromAPIError(err)
	}
	policy := resp.Data
	policy.Content = SanitizeHTML(policy.Content)
	if policy.Title == "" {
		policy.Title = kind.Title()
	}
	return policy, nil
}

// Update applies a partial change to a policy document.
func (s *PolicyService) Update(ctx context.Context, kind model.PolicyKind, req model.UpdatePolicyRequest) (model.Policy, error) {
	if req.Content.Valid {
		req.Content = null.StringFrom(SanitizeHTML(req.Content.String))
	}
	if err := validate.Struct(req); err != nil {
		return model.Policy{}, err
	}
	resp, err := s.api.UpdatePolicy(ctx, kind, s.id, req)
	if err != nil {
		return model.Policy{}, apperrors.FromAPIError(err)
	}
	s.logger.InfoContext(ctx, "policy updated", "kind", kind, "version", resp.Data.Version)
	policy := resp.Data
	policy.Content = SanitizeHTML(policy.Content)
	return policy, nil
}
