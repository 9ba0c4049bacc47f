package dataset

import (
	"reflect"
	"testing"
	"time"

	"github.com/charadex/charadex/internal/api"
)

func sampleCharacters() []api.Character {
	return []api.Character{
		{ID: 1, Name: "Rick Sanchez", Species: "Human", Created: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Morty Smith", Species: "Human", Created: time.Date(2021, 6, 15, 12, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Birdperson", Species: "Bird-Person", Created: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(chars []api.Character) []int {
	out := make([]int, len(chars))
	for i, c := range chars {
		out[i] = c.ID
	}
	return out
}

func TestEmptyCriteriaMatchesAll(t *testing.T) {
	d := New()
	d.SetCharacters(sampleCharacters())

	if got := ids(d.View()); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("expected all characters, got %v", got)
	}
}

func TestKeywordIsCaseInsensitiveSubstring(t *testing.T) {
	d := New()
	d.SetCharacters(sampleCharacters())
	d.SetCriteria(Criteria{Keyword: "morty"})

	got := d.View()
	if len(got) != 1 || got[0].Name != "Morty Smith" {
		t.Errorf("expected only Morty Smith, got %v", got)
	}

	d.SetCriteria(Criteria{Keyword: "SANCH"})
	got = d.View()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected only Rick Sanchez, got %v", got)
	}
}

func TestSpeciesIsExactAndCaseSensitive(t *testing.T) {
	d := New()
	d.SetCharacters(sampleCharacters())

	d.SetCriteria(Criteria{Species: "Human"})
	if got := ids(d.View()); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("expected humans, got %v", got)
	}

	d.SetCriteria(Criteria{Species: "human"})
	if len(d.View()) != 0 {
		t.Errorf("expected case-sensitive species match to exclude all, got %v", ids(d.View()))
	}
}

func TestDateBoundsAreInclusive(t *testing.T) {
	chars := sampleCharacters()
	from := chars[1].Created
	to := chars[1].Created

	d := New()
	d.SetCharacters(chars)
	d.SetCriteria(Criteria{From: &from, To: &to})

	if got := ids(d.View()); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("expected bounds equal to created to include the character, got %v", got)
	}
}

func TestDateRange(t *testing.T) {
	chars := sampleCharacters()
	from := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	d := New()
	d.SetCharacters(chars)
	d.SetCriteria(Criteria{From: &from})
	if got := ids(d.View()); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("expected characters created after 2021, got %v", got)
	}

	to := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	d.SetCriteria(Criteria{To: &to})
	if got := ids(d.View()); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("expected characters created before 2021, got %v", got)
	}
}

func TestPredicatesCombineWithAnd(t *testing.T) {
	chars := sampleCharacters()
	from := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	d := New()
	d.SetCharacters(chars)
	// "r" matches Rick and Birdperson; Human narrows to Rick and Morty;
	// the date bound excludes Rick. Nothing satisfies all three.
	d.SetCriteria(Criteria{Keyword: "rick", Species: "Human", From: &from})
	if len(d.View()) != 0 {
		t.Errorf("expected empty view under AND composition, got %v", ids(d.View()))
	}

	d.SetCriteria(Criteria{Keyword: "o", Species: "Human", From: &from})
	if got := ids(d.View()); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("expected only Morty, got %v", got)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	d := New()
	d.SetCharacters(sampleCharacters())
	d.SetCriteria(Criteria{Keyword: "r", Species: "Human"})

	first := append([]api.Character(nil), d.View()...)
	d.Recompute()
	if !reflect.DeepEqual(first, d.View()) {
		t.Errorf("recompute with unchanged inputs changed the view:\n%v\n%v", first, d.View())
	}
}

func TestViewPreservesOrder(t *testing.T) {
	// Duplicate ids propagate; no reordering or dedup happens.
	chars := []api.Character{
		{ID: 2, Name: "Morty Smith", Species: "Human"},
		{ID: 1, Name: "Rick Sanchez", Species: "Human"},
		{ID: 2, Name: "Morty Smith", Species: "Human"},
	}
	d := New()
	d.SetCharacters(chars)
	if got := ids(d.View()); !reflect.DeepEqual(got, []int{2, 1, 2}) {
		t.Errorf("expected canonical order with duplicates, got %v", got)
	}
}

func TestSpeciesOptions(t *testing.T) {
	d := New()
	d.SetCharacters(sampleCharacters())
	want := []string{"Bird-Person", "Human"}
	if got := d.Species(); !reflect.DeepEqual(got, want) {
		t.Errorf("Species() = %v, want %v", got, want)
	}
}
