package quote

import (
	"strings"
	"testing"
)

func TestBioExtractor_Run_AuthorPage(t *testing.T) {
	extractor := NewBioExtractor()

	htmlContent := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Oscar Wilde (Author of The Picture of Dorian Gray)</title>
	</head>
	<body>
		<header>
			<nav>Home | Browse | Community</nav>
		</header>
		<main>
			<article>
				<h1>Oscar Wilde</h1>
				<p>Oscar Fingal O'Fflahertie Wills Wilde was an Irish poet and playwright. After writing in different forms throughout the 1880s, he became one of the most popular playwrights in London in the early 1890s.</p>
				<p>He is best remembered for his epigrams and plays, his novel The Picture of Dorian Gray, and the circumstances of his criminal conviction. Wilde's parents were Anglo-Irish intellectuals in Dublin, and he showed himself to be an exceptional classicist.</p>
				<p>At the turn of the 1890s, he refined his ideas about the supremacy of art in a series of dialogues and essays, and incorporated themes of decadence, duplicity, and beauty into what would be his only novel.</p>
			</article>
		</main>
		<aside>
			<div>Advertisement</div>
		</aside>
		<footer>
			<p>Copyright 2024</p>
		</footer>
	</body>
	</html>
	`

	bio, err := extractor.Run([]byte(htmlContent))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if bio == "" {
		t.Errorf("Expected non-empty bio")
	}

	if !strings.Contains(bio, "Irish poet and playwright") {
		t.Errorf("Expected bio to contain the biography text")
	}

	// Output is plain text, not markup
	if strings.Contains(bio, "<p>") || strings.Contains(bio, "<article>") {
		t.Errorf("Expected plain text bio, got markup: %q", bio)
	}

	if strings.Contains(bio, "Copyright 2024") {
		t.Errorf("Expected bio to exclude footer content")
	}
}

func TestBioExtractor_Run_CollapsesWhitespace(t *testing.T) {
	extractor := NewBioExtractor()

	htmlContent := `<html><body><article>
		<p>Maya Angelou was an American memoirist,
		popular poet, and civil rights activist.</p>
		<p>She published seven autobiographies, three books of essays,
		several books of poetry, and is credited with a list of plays,
		movies, and television shows spanning over fifty years. She
		received dozens of awards and more than fifty honorary degrees
		over the course of her long and celebrated career.</p>
	</article></body></html>`

	bio, err := extractor.Run([]byte(htmlContent))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if strings.Contains(bio, "\n") || strings.Contains(bio, "  ") {
		t.Errorf("Expected collapsed whitespace in bio, got: %q", bio)
	}
}

func TestBioExtractor_Run_TruncatesLongBios(t *testing.T) {
	extractor := NewBioExtractor()

	paragraph := "<p>" + strings.Repeat("A long and winding biography sentence that keeps going. ", 20) + "</p>"
	htmlContent := "<html><body><article>" + strings.Repeat(paragraph, 10) + "</article></body></html>"

	bio, err := extractor.Run([]byte(htmlContent))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := len([]rune(bio)); got > maxBioLength+3 {
		t.Errorf("Expected bio capped at %d runes, got %d", maxBioLength+3, got)
	}
	if !strings.HasSuffix(bio, "...") {
		t.Errorf("Expected truncated bio to end with an ellipsis")
	}
}

func TestBioExtractor_Run_EmptyData(t *testing.T) {
	extractor := NewBioExtractor()

	bio, err := extractor.Run([]byte{})

	if err == nil {
		t.Errorf("Expected error for empty data")
	}
	if bio != "" {
		t.Errorf("Expected empty bio for empty data")
	}

	expectedError := "HTML data is empty"
	if err != nil && err.Error() != expectedError {
		t.Errorf("Expected error message '%s', got '%s'", expectedError, err.Error())
	}
}

func TestBioExtractor_Run_NilData(t *testing.T) {
	extractor := NewBioExtractor()

	bio, err := extractor.Run(nil)

	if err == nil {
		t.Errorf("Expected error for nil data")
	}
	if bio != "" {
		t.Errorf("Expected empty bio for nil data")
	}
}
