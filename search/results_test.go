package search

import "testing"

const serpHTML = `
<html><body>
  <ol id="results">
    <li class="result"><h2><a href="https://ads.example/track?x=1">Sponsored: HomeDeals</a></h2></li>
    <li class="result"><h2><a href="/redirect/aHR0cHM">Zillow: Real Estate</a></h2></li>
    <li class="result"><h2><a href="https://www.trulia.example/new-york-ny/">New York Homes - Trulia</a></h2></li>
    <li class="result"><h2><a href="https://www.trulia.example/boston-ma/">Boston Homes - Trulia</a></h2></li>
  </ol>
</body></html>`

func TestFirstBrandResult_FirstMatchInDocumentOrder(t *testing.T) {
	got := FirstBrandResult(serpHTML, "h2 a, h3 a", "Trulia", "https://search.example/results?q=x")
	want := "https://www.trulia.example/new-york-ny/"
	if got != want {
		t.Errorf("FirstBrandResult = %q, want %q", got, want)
	}
}

func TestFirstBrandResult_NoMatch(t *testing.T) {
	got := FirstBrandResult(serpHTML, "h2 a, h3 a", "Redfin", "https://search.example/")
	if got != "" {
		t.Errorf("expected absence for unmatched brand, got %q", got)
	}
}

func TestFirstBrandResult_CaseSensitive(t *testing.T) {
	got := FirstBrandResult(serpHTML, "h2 a, h3 a", "trulia", "https://search.example/")
	if got != "" {
		t.Errorf("brand match is a case-sensitive substring, got %q", got)
	}
}

func TestFirstBrandResult_RelativeHrefResolved(t *testing.T) {
	html := `<html><body><h3><a href="/out/trulia">Homes on Trulia</a></h3></body></html>`
	got := FirstBrandResult(html, "h2 a, h3 a", "Trulia", "https://search.example/results")
	want := "https://search.example/out/trulia"
	if got != want {
		t.Errorf("FirstBrandResult = %q, want relative href resolved to %q", got, want)
	}
}

func TestFirstBrandResult_IgnoresNonHeadingAnchors(t *testing.T) {
	html := `<html><body>
		<p><a href="https://spam.example/">Trulia mentioned in passing</a></p>
		<h2><a href="https://www.trulia.example/">Trulia</a></h2>
	</body></html>`
	got := FirstBrandResult(html, "h2 a, h3 a", "Trulia", "https://search.example/")
	if got != "https://www.trulia.example/" {
		t.Errorf("only result heading anchors should be scanned, got %q", got)
	}
}

func TestFirstBrandResult_UnparseableOrEmpty(t *testing.T) {
	if got := FirstBrandResult("", "h2 a", "Trulia", "https://search.example/"); got != "" {
		t.Errorf("empty document should yield absence, got %q", got)
	}
}

func TestFirstBrandResult_AnchorWithoutHrefSkipped(t *testing.T) {
	html := `<html><body>
		<h2><a>Trulia (no href)</a></h2>
		<h2><a href="https://www.trulia.example/a/">Trulia</a></h2>
	</body></html>`
	got := FirstBrandResult(html, "h2 a, h3 a", "Trulia", "https://search.example/")
	if got != "https://www.trulia.example/a/" {
		t.Errorf("hrefless anchors must be skipped, got %q", got)
	}
}
