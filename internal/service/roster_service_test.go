package service

import (
	"context"
	"slices"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

func TestRoster_AutoAddFromExpense(t *testing.T) {
	ledger, roster, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	addExpense(t, ledger, "Lunch", 20, "Carl", "Carl", "Eric", "BU")
	addExpense(t, ledger, "Taxi", 12, "Dora", "Eric", "Dora")

	resp, err := roster.ListMembers(ctx, connect.NewRequest(&api.ListMembersRequest{}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}

	want := []string{"Carl", "Eric", "BU", "Dora"}
	if !slices.Equal(resp.Msg.Members, want) {
		t.Errorf("members: expected %v, got %v", want, resp.Msg.Members)
	}
}

func TestRoster_AddMember(t *testing.T) {
	_, roster, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := roster.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: " Alice "}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if !slices.Equal(resp.Msg.Members, []string{"Alice"}) {
		t.Errorf("members: expected [Alice], got %v", resp.Msg.Members)
	}

	_, err = roster.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: "Alice"}))
	assertCode(t, err, connect.CodeAlreadyExists)

	_, err = roster.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: "   "}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestRoster_RemoveAndMove(t *testing.T) {
	_, roster, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		if _, err := roster.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{Name: name})); err != nil {
			t.Fatalf("AddMember(%s) failed: %v", name, err)
		}
	}

	resp, err := roster.MoveMember(ctx, connect.NewRequest(&api.MoveMemberRequest{Name: "Dave", Position: 0}))
	if err != nil {
		t.Fatalf("MoveMember failed: %v", err)
	}
	if want := []string{"Dave", "Alice", "Bob", "Carol"}; !slices.Equal(resp.Msg.Members, want) {
		t.Errorf("after move: expected %v, got %v", want, resp.Msg.Members)
	}

	// Out-of-range positions clamp to the end
	resp, err = roster.MoveMember(ctx, connect.NewRequest(&api.MoveMemberRequest{Name: "Alice", Position: 42}))
	if err != nil {
		t.Fatalf("MoveMember failed: %v", err)
	}
	if want := []string{"Dave", "Bob", "Carol", "Alice"}; !slices.Equal(resp.Msg.Members, want) {
		t.Errorf("after clamped move: expected %v, got %v", want, resp.Msg.Members)
	}

	resp, err = roster.RemoveMember(ctx, connect.NewRequest(&api.RemoveMemberRequest{Name: "Bob"}))
	if err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	if want := []string{"Dave", "Carol", "Alice"}; !slices.Equal(resp.Msg.Members, want) {
		t.Errorf("after remove: expected %v, got %v", want, resp.Msg.Members)
	}

	_, err = roster.RemoveMember(ctx, connect.NewRequest(&api.RemoveMemberRequest{Name: "Bob"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = roster.MoveMember(ctx, connect.NewRequest(&api.MoveMemberRequest{Name: "Zed", Position: 1}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestRoster_RemoveKeepsExpenses(t *testing.T) {
	ledger, roster, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	addExpense(t, ledger, "Lunch", 20, "Carl", "Carl", "Eric", "BU")

	if _, err := roster.RemoveMember(ctx, connect.NewRequest(&api.RemoveMemberRequest{Name: "Eric"})); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	resp, err := ledger.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	names := make([]string, len(resp.Msg.Summaries))
	for i, s := range resp.Msg.Summaries {
		names[i] = s.Participant
	}
	if !slices.Contains(names, "Eric") {
		t.Errorf("expected Eric to remain in the summary, got %v", names)
	}
}
