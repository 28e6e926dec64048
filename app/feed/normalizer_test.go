package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func parseRaw(t *testing.T, data string) *gofeed.Feed {
	t.Helper()

	raw, err := gofeed.NewParser().Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to parse test document: %v", err)
	}
	return raw
}

func TestNormalizeRSS2(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Test Item 1</title>
      <link>https://example.com/item1</link>
      <description>Test Item 1 Description</description>
      <guid>item-1</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
      <author>test@example.com (Test Author)</author>
    </item>
    <item>
      <title>Test Item 2</title>
      <link>https://example.com/item2</link>
      <pubDate>Mon, 03 Jul 2023 11:00:00 +0200</pubDate>
    </item>
  </channel>
</rss>`

	normalizer := NewNormalizer()
	fetched, err := normalizer.Run(parseRaw(t, rssData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if fetched.Title != "Test Feed" {
		t.Errorf("Expected title 'Test Feed', got: %s", fetched.Title)
	}
	if fetched.Link != "https://example.com" {
		t.Errorf("Expected link 'https://example.com', got: %s", fetched.Link)
	}
	if fetched.Description != "Test Description" {
		t.Errorf("Expected description 'Test Description', got: %s", fetched.Description)
	}

	if len(fetched.Items) != 2 {
		t.Fatalf("Expected 2 items, got: %d", len(fetched.Items))
	}

	item1 := fetched.Items[0]
	if item1.Title != "Test Item 1" {
		t.Errorf("Expected title 'Test Item 1', got: %s", item1.Title)
	}
	if item1.GUID != "item-1" {
		t.Errorf("Expected GUID 'item-1', got: %s", item1.GUID)
	}
	if item1.Author != "Test Author" {
		t.Errorf("Expected author 'Test Author', got: %s", item1.Author)
	}

	want1 := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	if !item1.PublicationDate.Equal(want1) {
		t.Errorf("Expected publication date %v, got: %v", want1, item1.PublicationDate)
	}

	// Source order is preserved, and absent optional fields stay empty
	item2 := fetched.Items[1]
	if item2.Title != "Test Item 2" {
		t.Errorf("Expected title 'Test Item 2', got: %s", item2.Title)
	}
	if item2.GUID != "" {
		t.Errorf("Expected empty GUID, got: %s", item2.GUID)
	}
	if item2.Author != "" {
		t.Errorf("Expected empty author, got: %s", item2.Author)
	}
	if item2.Description != "" {
		t.Errorf("Expected empty description, got: %s", item2.Description)
	}

	want2 := time.Date(2023, 7, 3, 9, 0, 0, 0, time.UTC)
	if !item2.PublicationDate.Equal(want2) {
		t.Errorf("Expected publication date %v, got: %v", want2, item2.PublicationDate)
	}
}

func TestNormalizeRejectsMissingPublicationDate(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Good Item</title>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Dateless Item</title>
    </item>
  </channel>
</rss>`

	normalizer := NewNormalizer()
	_, err := normalizer.Run(parseRaw(t, rssData))

	if err == nil {
		t.Fatal("Expected error for item without publication date")
	}
	if !strings.Contains(err.Error(), "missing publication date") {
		t.Errorf("Expected missing publication date error, got: %v", err)
	}
}

func TestNormalizeRejectsMalformedPublicationDate(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Bad Date Item</title>
      <pubDate>2023-07-03T10:00:00Z</pubDate>
    </item>
  </channel>
</rss>`

	normalizer := NewNormalizer()
	_, err := normalizer.Run(parseRaw(t, rssData))

	if err == nil {
		t.Fatal("Expected error for malformed publication date")
	}
	if !strings.Contains(err.Error(), "invalid publication date") {
		t.Errorf("Expected invalid publication date error, got: %v", err)
	}
}

func TestNormalizeEmptyChannel(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Empty Feed</title>
    <link>https://example.com</link>
    <description>No items</description>
  </channel>
</rss>`

	normalizer := NewNormalizer()
	fetched, err := normalizer.Run(parseRaw(t, rssData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(fetched.Items) != 0 {
		t.Errorf("Expected 0 items, got: %d", len(fetched.Items))
	}
}

func TestParseRFC2822Layouts(t *testing.T) {
	cases := []struct {
		value string
		want  time.Time
	}{
		{"Mon, 03 Jul 2023 10:00:00 GMT", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"Mon, 03 Jul 2023 10:00:00 +0000", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		// Single-digit days are valid RFC2822
		{"Wed, 1 Jan 2020 00:00:00 GMT", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Wed, 1 Jan 2020 00:00:00 +0000", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"3 Jul 2023 10:00:00 -0500", time.Date(2023, 7, 3, 15, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := parseRFC2822(tc.value)
		if err != nil {
			t.Errorf("parseRFC2822(%q) failed: %v", tc.value, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseRFC2822(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
