package gmail

import (
	"encoding/base64"
	"testing"

	"google.golang.org/api/gmail/v1"
)

func enc(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func TestGetHeaderCaseInsensitive(t *testing.T) {
	headers := []*gmail.MessagePartHeader{
		{Name: "from", Value: "venue@example.com"},
		{Name: "Subject", Value: "Your quote"},
	}

	if got := getHeader(headers, "From"); got != "venue@example.com" {
		t.Errorf("From = %q", got)
	}
	if got := getHeader(headers, "subject"); got != "Your quote" {
		t.Errorf("subject = %q", got)
	}
	if got := getHeader(headers, "Reply-To"); got != "" {
		t.Errorf("missing header = %q, want empty", got)
	}
}

func TestGetMessageBodyPrefersTopLevelPayload(t *testing.T) {
	msg := &gmail.Message{
		Snippet: "snippet",
		Payload: &gmail.MessagePart{
			Body: &gmail.MessagePartBody{Data: enc("top-level body")},
			Parts: []*gmail.MessagePart{
				{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: enc("part body")}},
			},
		},
	}

	if got := getMessageBody(msg); got != "top-level body" {
		t.Errorf("body = %q", got)
	}
}

func TestGetMessageBodyFindsNestedPlainText(t *testing.T) {
	msg := &gmail.Message{
		Snippet: "snippet",
		Payload: &gmail.MessagePart{
			Parts: []*gmail.MessagePart{
				{
					MimeType: "multipart/alternative",
					Parts: []*gmail.MessagePart{
						{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: enc("nested plain")}},
						{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: enc("<p>html</p>")}},
					},
				},
			},
		},
	}

	if got := getMessageBody(msg); got != "nested plain" {
		t.Errorf("body = %q", got)
	}
}

func TestGetMessageBodyFallsBackToStrippedHTML(t *testing.T) {
	msg := &gmail.Message{
		Snippet: "snippet",
		Payload: &gmail.MessagePart{
			Parts: []*gmail.MessagePart{
				{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: enc("<p>Hello &amp; welcome</p>")}},
			},
		},
	}

	if got := getMessageBody(msg); got != "Hello & welcome" {
		t.Errorf("body = %q", got)
	}
}

func TestGetMessageBodyFallsBackToSnippet(t *testing.T) {
	msg := &gmail.Message{
		Snippet: "just a snippet",
		Payload: &gmail.MessagePart{},
	}

	if got := getMessageBody(msg); got != "just a snippet" {
		t.Errorf("body = %q", got)
	}

	if got := getMessageBody(&gmail.Message{Snippet: "no payload"}); got != "no payload" {
		t.Errorf("body = %q", got)
	}
}

func TestDecodeBase64HandlesMissingPadding(t *testing.T) {
	padded := base64.URLEncoding.EncodeToString([]byte("hello"))
	unpadded := base64.RawURLEncoding.EncodeToString([]byte("hello"))

	if got := decodeBase64(padded); got != "hello" {
		t.Errorf("padded = %q", got)
	}
	if got := decodeBase64(unpadded); got != "hello" {
		t.Errorf("unpadded = %q", got)
	}
	if got := decodeBase64("!!not base64!!"); got != "" {
		t.Errorf("garbage = %q, want empty", got)
	}
}

func TestStripHTML(t *testing.T) {
	html := `<div><p>Hi  both,</p><br/>Your &quot;final&quot; quote is&nbsp;ready.</div>`
	want := `Hi both, Your "final" quote is ready.`
	if got := stripHTML(html); got != want {
		t.Errorf("stripHTML = %q, want %q", got, want)
	}
}
