package enrich

import (
	"reflect"
	"testing"
)

var testVocab = []string{"python", "java", "aws", "docker", "excel", "audit"}

func TestSkillsVocabularyMatchIsCaseInsensitive(t *testing.T) {
	found, _ := Skills("We use Python and AWS heavily.", testVocab, 10)
	want := []string{"python", "aws"}
	if !reflect.DeepEqual(found, want) {
		t.Fatalf("found = %v, want %v", found, want)
	}
}

func TestSkillsAdditionalFromSectionWindow(t *testing.T) {
	text := "About us. Requirements: kafka spark airflow proficiency. Perks are great."
	_, additional := Skills(text, testVocab, 10)
	want := []string{"kafka", "spark", "airflow", "proficiency"}
	if !reflect.DeepEqual(additional, want) {
		t.Fatalf("additional = %v, want %v", additional, want)
	}
}

func TestSkillsAdditionalCappedAtMax(t *testing.T) {
	text := "Skills: alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima."
	_, additional := Skills(text, testVocab, 10)
	if len(additional) > 10 {
		t.Fatalf("additional has %d entries, cap is 10", len(additional))
	}
	// First-seen order, deterministic across runs.
	if additional[0] != "alpha" || additional[9] != "juliett" {
		t.Fatalf("unexpected order: %v", additional)
	}
}

func TestSkillsAdditionalDeduplicated(t *testing.T) {
	text := "Qualifications: kafka kafka kafka spark."
	_, additional := Skills(text, testVocab, 10)
	want := []string{"kafka", "spark"}
	if !reflect.DeepEqual(additional, want) {
		t.Fatalf("additional = %v, want %v", additional, want)
	}
}

func TestSkillsNoSectionNoAdditional(t *testing.T) {
	_, additional := Skills("Just a plain paragraph about the company.", testVocab, 10)
	if len(additional) != 0 {
		t.Fatalf("expected no additional skills, got %v", additional)
	}
}

func TestMergeSkills(t *testing.T) {
	merged := MergeSkills([]string{"python", "aws"}, []string{"kafka", "Python", "spark"})
	want := []string{"python", "aws", "kafka", "spark"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
}
