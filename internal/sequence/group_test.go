package sequence_test

import (
	"reflect"
	"testing"

	"cxrextract/internal/sequence"
)

func entry(name string, frame int) sequence.Entry {
	return sequence.Entry{
		FileName:     name,
		SequenceName: name,
		FrameNumber:  frame,
	}
}

func frames(entries []sequence.Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.FrameNumber)
	}
	return out
}

func TestGroupSortsByFrameNumber(t *testing.T) {
	groups := sequence.Group([]sequence.Entry{
		entry("A", 3), entry("B", 1), entry("A", 1), entry("B", 2),
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if got := frames(groups["A"]); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("group A frames = %v", got)
	}
	if got := frames(groups["B"]); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("group B frames = %v", got)
	}
}

func TestGroupStableForDuplicateFrames(t *testing.T) {
	first := sequence.Entry{SequenceName: "A", FrameNumber: 5, FileName: "first"}
	second := sequence.Entry{SequenceName: "A", FrameNumber: 5, FileName: "second"}
	groups := sequence.Group([]sequence.Entry{first, second})

	got := groups["A"]
	if len(got) != 2 {
		t.Fatalf("expected both duplicate frames retained, got %d", len(got))
	}
	if got[0].FileName != "first" || got[1].FileName != "second" {
		t.Fatalf("duplicate frames reordered: %v", got)
	}
}

func TestGroupEmptyInput(t *testing.T) {
	if groups := sequence.Group(nil); len(groups) != 0 {
		t.Fatalf("expected empty map, got %v", groups)
	}
}

func TestNamesSorted(t *testing.T) {
	groups := sequence.Group([]sequence.Entry{
		entry("zed", 1), entry("alpha", 1), entry("mid", 1),
	})
	want := []string{"alpha", "mid", "zed"}
	if got := sequence.Names(groups); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
}
