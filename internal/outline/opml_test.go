package outline

import (
	"errors"
	"reflect"
	"testing"
)

const sampleOPML = `<?xml version="1.0" encoding="UTF-8"?>
<opml>
  <body>
    <outline text="Music">
      <outline text="Jazz" URL="http://example.com/jazz" type="audio" bitrate="128"/>
      <outline text="News" URL="http://example.com/news" type="audio"/>
    </outline>
    <outline URL="http://example.com/skipped" type="audio"/>
    <outline text="More Stations" URL="http://example.com/more" type="link">
      <outline text="Hidden" URL="http://example.com/hidden" type="audio"/>
    </outline>
  </body>
</opml>`

func TestParse(t *testing.T) {
	root := New(map[string]string{"text": "root"})
	if err := Parse([]byte(sampleOPML), root); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := childTexts(root); got != "Music,More Stations" {
		t.Fatalf("top level = %s, want Music,More Stations", got)
	}

	music := root.Children[0]
	if got := childTexts(music); got != "Jazz,News" {
		t.Fatalf("Music children = %s, want Jazz,News", got)
	}
	jazz := music.Children[0]
	if jazz.Attrs["bitrate"] != "128" {
		t.Fatalf("extra attributes must survive parsing")
	}
	if !jazz.IsPlayable() {
		t.Fatalf("Jazz should be playable")
	}

	// A URL-bearing outline is a lazy node; its inline children are ignored.
	more := root.Children[1]
	if more.Len() != 0 {
		t.Fatalf("URL-bearing outline must not be expanded inline, got %d children", more.Len())
	}
	if !more.IsDir() {
		t.Fatalf("link outline should classify as directory")
	}
}

func TestPopulate(t *testing.T) {
	calls := 0
	fetcher := FetcherFunc(func(url string) ([]byte, error) {
		calls++
		return []byte(sampleOPML), nil
	})

	r := New(map[string]string{"text": "Stations", "URL": "https://example.com/root"})
	r.Populate(fetcher)
	if r.Len() != 2 {
		t.Fatalf("Populate appended %d children, want 2", r.Len())
	}
	r.Populate(fetcher)
	if calls != 1 {
		t.Fatalf("Populate fetched %d times, want once", calls)
	}
}

func TestPopulateFailureDegradesToEmpty(t *testing.T) {
	boom := FetcherFunc(func(url string) ([]byte, error) {
		return nil, errors.New("connection refused")
	})
	r := New(map[string]string{"text": "Stations", "URL": "https://example.com/root"})
	r.Populate(boom)
	if r.Len() != 0 {
		t.Fatalf("fetch failure must yield an empty directory")
	}

	garbage := FetcherFunc(func(url string) ([]byte, error) {
		return []byte("<html>not opml"), nil
	})
	r2 := New(map[string]string{"text": "Stations", "URL": "https://example.com/root"})
	r2.Populate(garbage)
	if r2.Len() != 0 {
		t.Fatalf("parse failure must yield an empty directory")
	}
}

func TestPopulateWithoutURL(t *testing.T) {
	fetcher := FetcherFunc(func(url string) ([]byte, error) {
		t.Fatalf("fetcher must not be called without a URL")
		return nil, nil
	})
	r := New(map[string]string{"text": "Empty"})
	r.Populate(fetcher)
	if r.Len() != 0 {
		t.Fatalf("record without URL stays empty")
	}
}

func TestSecureURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"http://example.com/a", "https://example.com/a"},
		{"https://example.com/a", "https://example.com/a"},
		{"file:///tmp/x.opml", "file:///tmp/x.opml"},
		{"http://http.example.com/http://x", "https://http.example.com/http://x"},
	}
	for _, tc := range cases {
		if got := SecureURL(tc.in); got != tc.want {
			t.Fatalf("SecureURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	root := New(map[string]string{"text": "root"})
	root.Add(map[string]string{"text": "Jazz", "URL": "https://example.com/jazz", "type": "audio", "bitrate": "128"})
	root.Add(map[string]string{"text": "News", "URL": "https://example.com/news", "type": "audio"})

	data, err := Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back := New(map[string]string{"text": "root"})
	if err := Parse(data, back); err != nil {
		t.Fatalf("Parse round trip: %v", err)
	}
	if back.Len() != root.Len() {
		t.Fatalf("round trip count = %d, want %d", back.Len(), root.Len())
	}
	for i := range root.Children {
		if !reflect.DeepEqual(back.Children[i].Attrs, root.Children[i].Attrs) {
			t.Fatalf("child %d attrs = %v, want %v", i, back.Children[i].Attrs, root.Children[i].Attrs)
		}
	}
}
