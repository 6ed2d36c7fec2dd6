package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

var _ apiconnect.RosterServiceHandler = (*RosterService)(nil)

// RosterService implements the Connect RosterService: the ordered list of
// people offered when recording an expense.
type RosterService struct {
	store storage.Store
}

// NewRosterService creates a new RosterService with the given storage backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

func (s *RosterService) membersResponse(ctx context.Context) (*connect.Response[api.MembersResponse], error) {
	names, err := memberNames(ctx, s.store)
	if err != nil {
		slog.Error("Failed to list members", "error", err)
		return nil, storeError(err)
	}
	if names == nil {
		names = []string{}
	}
	return connect.NewResponse(&api.MembersResponse{Members: names}), nil
}

// ListMembers returns the roster in display order.
func (s *RosterService) ListMembers(ctx context.Context, _ *connect.Request[api.ListMembersRequest]) (*connect.Response[api.MembersResponse], error) {
	return s.membersResponse(ctx)
}

// AddMember appends a new name to the roster.
func (s *RosterService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.MembersResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("member name is required"))
	}

	if err := s.store.AddMember(ctx, name); err != nil {
		slog.Error("AddMember failed", "name", name, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Member added", "name", name)
	return s.membersResponse(ctx)
}

// RemoveMember deletes a name from the roster. Expenses that mention the
// name are left untouched.
func (s *RosterService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.MembersResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("member name is required"))
	}

	if err := s.store.RemoveMember(ctx, name); err != nil {
		slog.Error("RemoveMember failed", "name", name, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Member removed", "name", name)
	return s.membersResponse(ctx)
}

// MoveMember reorders the roster, placing the name at the requested position.
func (s *RosterService) MoveMember(ctx context.Context, req *connect.Request[api.MoveMemberRequest]) (*connect.Response[api.MembersResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("member name is required"))
	}

	if err := s.store.MoveMember(ctx, name, req.Msg.Position); err != nil {
		slog.Error("MoveMember failed", "name", name, "position", req.Msg.Position, "error", err)
		return nil, storeError(err)
	}

	return s.membersResponse(ctx)
}
