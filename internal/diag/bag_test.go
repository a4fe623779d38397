package diag

import (
	"testing"

	"jsfmt/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBagRespectsCapacity(t *testing.T) {
	bag := NewBag(2)
	for i := uint32(0); i < 3; i++ {
		added := bag.Add(New(SevError, ValUnclosedBracket, span(i, i+1), "unclosed '('"))
		if want := i < 2; added != want {
			t.Fatalf("Add #%d = %v, want %v", i, added, want)
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSortOrdersByPosition(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevWarning, ValMissingParen, span(9, 10), "expected '(' after 'if'"))
	bag.Add(New(SevError, ValUnexpectedClosing, span(2, 3), "unexpected ')'"))
	bag.Add(New(SevError, ValUnclosedBracket, span(5, 6), "unclosed '{'"))

	bag.Sort()
	items := bag.Items()
	for i := 1; i < len(items); i++ {
		if items[i-1].Primary.Start > items[i].Primary.Start {
			t.Fatalf("items out of order at %d: %v then %v", i, items[i-1].Primary, items[i].Primary)
		}
	}
}

func TestBagDedupDropsRepeatedFindings(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevError, ValUnclosedBracket, span(3, 4), "unclosed '('"))
	bag.Add(New(SevError, ValUnclosedBracket, span(3, 4), "unclosed '('"))
	bag.Add(New(SevWarning, ValMissingParen, span(0, 2), "expected '(' after 'if'"))
	// same code, different position: not a duplicate
	bag.Add(New(SevError, ValUnclosedBracket, span(7, 8), "unclosed '('"))

	bag.Dedup()
	if bag.Len() != 3 {
		t.Fatalf("Len after Dedup = %d, want 3", bag.Len())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("Dedup must keep one finding of each kind")
	}
}

func TestBagReporterKeepsNotes(t *testing.T) {
	bag := NewBag(4)
	reporter := BagReporter{Bag: bag}
	reporter.Report(ValMismatchedBracket, SevError, span(5, 6), "mismatched bracket",
		[]Note{{Span: span(1, 2), Msg: "opened here"}})

	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("Len = %d, want 1", len(items))
	}
	d := items[0]
	if d.Code != ValMismatchedBracket || d.Severity != SevError {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "opened here" || d.Notes[0].Span != span(1, 2) {
		t.Fatalf("unexpected notes: %+v", d.Notes)
	}
}

func TestNilBagReporterDropsReports(t *testing.T) {
	BagReporter{}.Report(ValUnclosedBracket, SevError, span(0, 1), "unclosed '('", nil)
}
