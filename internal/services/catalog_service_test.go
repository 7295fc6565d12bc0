package services

import (
	"context"
	"testing"

	"github.com/yoockh/workmatch/internal/utils"
)

func TestPutSynonyms(t *testing.T) {
	synonyms := &fakeSynonyms{}
	svc := NewCatalogService(synonyms, &fakeLocations{})

	row, err := svc.PutSynonyms(context.Background(), " Plumbing ", []string{"Pipework", "pipework", "plumbing", " ", "Pipe Fitting"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Skill != "plumbing" {
		t.Fatalf("expected normalized skill, got %q", row.Skill)
	}
	want := []string{"pipework", "pipe fitting"}
	got := synonyms.rows["plumbing"]
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("synonyms = %v, want %v", got, want)
	}

	if _, err := svc.PutSynonyms(context.Background(), "  ", nil); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestPutLocation(t *testing.T) {
	locations := &fakeLocations{}
	svc := NewCatalogService(&fakeSynonyms{}, locations)
	ctx := context.Background()

	root, err := svc.PutLocation(ctx, "Ethiopia", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	city, err := svc.PutLocation(ctx, " Addis   Ababa ", ptr("ethiopia"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if city.Name != "Addis Ababa" || city.ParentID == nil || *city.ParentID != root.ID {
		t.Fatalf("unexpected location: %+v", city)
	}

	again, err := svc.PutLocation(ctx, "addis ababa", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != city.ID || again.ParentID != nil {
		t.Fatalf("expected existing record to be re-parented to root, got %+v", again)
	}

	if _, err := svc.PutLocation(ctx, "Bole", ptr("Atlantis")); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT for unknown parent, got %v", err)
	}
	if _, err := svc.PutLocation(ctx, "Ethiopia", ptr("Ethiopia")); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT for self parent, got %v", err)
	}
}
