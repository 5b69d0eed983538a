package resume

import (
	"strings"
	"testing"
)

func TestExtractKeywords_FrequencyOrder(t *testing.T) {
	text := "kubernetes kubernetes kubernetes docker docker terraform"
	got := ExtractKeywords(text)

	want := []string{"kubernetes", "docker", "terraform"}
	if len(got) != len(want) {
		t.Fatalf("got %d keywords %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractKeywords_StopWordsAndShortWordsDropped(t *testing.T) {
	got := ExtractKeywords("the and for you all can engineering api sql")
	for _, k := range got {
		switch k {
		case "the", "and", "for", "you", "all", "can":
			t.Errorf("stop word kept: %q", k)
		case "api", "sql":
			t.Errorf("three-letter word kept: %q", k)
		}
	}
	if len(got) != 1 || got[0] != "engineering" {
		t.Errorf("got %v, want [engineering]", got)
	}
}

func TestExtractKeywords_Lowercased(t *testing.T) {
	got := ExtractKeywords("Kubernetes KUBERNETES kubernetes")
	if len(got) != 1 || got[0] != "kubernetes" {
		t.Errorf("got %v, want [kubernetes]", got)
	}
}

func TestExtractKeywords_TopTwenty(t *testing.T) {
	var words []string
	for i := 0; i < 30; i++ {
		words = append(words, strings.Repeat(string(rune('a'+i%26)), 5+i/26))
	}
	got := ExtractKeywords(strings.Join(words, " "))
	if len(got) != 20 {
		t.Errorf("expected 20 keywords, got %d", len(got))
	}
}

func TestExtractKeywords_TiesKeepFirstSeenOrder(t *testing.T) {
	got := ExtractKeywords("zebra apple zebra apple mango")
	want := []string{"zebra", "apple", "mango"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
