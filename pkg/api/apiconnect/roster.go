package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

const (
	// RosterServiceName is the fully-qualified name of the RosterService.
	RosterServiceName = "splitledger.v1.RosterService"

	RosterServiceListMembersProcedure  = "/splitledger.v1.RosterService/ListMembers"
	RosterServiceAddMemberProcedure    = "/splitledger.v1.RosterService/AddMember"
	RosterServiceRemoveMemberProcedure = "/splitledger.v1.RosterService/RemoveMember"
	RosterServiceMoveMemberProcedure   = "/splitledger.v1.RosterService/MoveMember"
)

// RosterServiceHandler is implemented by the server side of RosterService.
type RosterServiceHandler interface {
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.MembersResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.MembersResponse], error)
	RemoveMember(context.Context, *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.MembersResponse], error)
	MoveMember(context.Context, *connect.Request[api.MoveMemberRequest]) (*connect.Response[api.MembersResponse], error)
}

// NewRosterServiceHandler builds an HTTP handler for every RosterService procedure.
func NewRosterServiceHandler(svc RosterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(RosterServiceListMembersProcedure,
		connect.NewUnaryHandler(RosterServiceListMembersProcedure, svc.ListMembers, opts...))
	mux.Handle(RosterServiceAddMemberProcedure,
		connect.NewUnaryHandler(RosterServiceAddMemberProcedure, svc.AddMember, opts...))
	mux.Handle(RosterServiceRemoveMemberProcedure,
		connect.NewUnaryHandler(RosterServiceRemoveMemberProcedure, svc.RemoveMember, opts...))
	mux.Handle(RosterServiceMoveMemberProcedure,
		connect.NewUnaryHandler(RosterServiceMoveMemberProcedure, svc.MoveMember, opts...))

	return "/" + RosterServiceName + "/", mux
}

// RosterServiceClient is a client for RosterService.
type RosterServiceClient interface {
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.MembersResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.MembersResponse], error)
	RemoveMember(context.Context, *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.MembersResponse], error)
	MoveMember(context.Context, *connect.Request[api.MoveMemberRequest]) (*connect.Response[api.MembersResponse], error)
}

// NewRosterServiceClient returns a RosterService client for the server at baseURL.
func NewRosterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RosterServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	return &rosterServiceClient{
		listMembers: connect.NewClient[api.ListMembersRequest, api.MembersResponse](
			httpClient, baseURL+RosterServiceListMembersProcedure, opts...),
		addMember: connect.NewClient[api.AddMemberRequest, api.MembersResponse](
			httpClient, baseURL+RosterServiceAddMemberProcedure, opts...),
		removeMember: connect.NewClient[api.RemoveMemberRequest, api.MembersResponse](
			httpClient, baseURL+RosterServiceRemoveMemberProcedure, opts...),
		moveMember: connect.NewClient[api.MoveMemberRequest, api.MembersResponse](
			httpClient, baseURL+RosterServiceMoveMemberProcedure, opts...),
	}
}

type rosterServiceClient struct {
	listMembers  *connect.Client[api.ListMembersRequest, api.MembersResponse]
	addMember    *connect.Client[api.AddMemberRequest, api.MembersResponse]
	removeMember *connect.Client[api.RemoveMemberRequest, api.MembersResponse]
	moveMember   *connect.Client[api.MoveMemberRequest, api.MembersResponse]
}

func (c *rosterServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.MembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *rosterServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.MembersResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *rosterServiceClient) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.MembersResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

func (c *rosterServiceClient) MoveMember(ctx context.Context, req *connect.Request[api.MoveMemberRequest]) (*connect.Response[api.MembersResponse], error) {
	return c.moveMember.CallUnary(ctx, req)
}
