// Package gmail fetches and decodes messages through the Gmail REST API.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	emaildomain "wedding-planner-backend/internal/email/domain"
)

// fetchConcurrency caps parallel per-message fetches against the Gmail API.
const fetchConcurrency = 10

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// newGmailService creates a Gmail API client authenticated with the user's
// bearer token.
func (s *Service) newGmailService(ctx context.Context, accessToken string) (*gmail.Service, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})

	srv, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}
	return srv, nil
}

// FetchMessages lists up to limit message ids matching query and fetches each
// full message, newest first. A failure on any individual fetch aborts the
// whole batch; the caller gets either a complete list or an error.
func (s *Service) FetchMessages(ctx context.Context, accessToken string, limit int, query string) ([]*emaildomain.Message, error) {
	srv, err := s.newGmailService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user := "me"

	requestLimit := int64(limit)
	if requestLimit <= 0 {
		requestLimit = 10
	}
	if requestLimit > 500 {
		requestLimit = 500 // Gmail API maximum
	}

	listCall := srv.Users.Messages.List(user).MaxResults(requestLimit)
	if query != "" {
		listCall = listCall.Q(query)
	}

	listResp, err := listCall.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve messages: %v", err)
	}

	if len(listResp.Messages) == 0 {
		return []*emaildomain.Message{}, nil
	}

	messages := make([]*emaildomain.Message, len(listResp.Messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, msg := range listResp.Messages {
		i, msgID := i, msg.Id
		g.Go(func() error {
			fullMsg, err := srv.Users.Messages.Get(user, msgID).Format("full").Context(gctx).Do()
			if err != nil {
				return fmt.Errorf("unable to retrieve message %s: %v", msgID, err)
			}
			messages[i] = convertMessage(fullMsg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Parallel fetching preserves list positions, but sort by date anyway so
	// the contract does not depend on upstream list order.
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Date.After(messages[j].Date)
	})

	return messages, nil
}

func convertMessage(msg *gmail.Message) *emaildomain.Message {
	headers := msg.Payload.Headers
	return &emaildomain.Message{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		From:     getHeader(headers, "From"),
		To:       getHeader(headers, "To"),
		Subject:  getHeader(headers, "Subject"),
		Date:     time.UnixMilli(msg.InternalDate),
		Snippet:  msg.Snippet,
		Body:     getMessageBody(msg),
	}
}

func getHeader(headers []*gmail.MessagePartHeader, name string) string {
	for _, header := range headers {
		if strings.EqualFold(header.Name, name) {
			return header.Value
		}
	}
	return ""
}

// getMessageBody decodes the message body, preferring the top-level payload,
// then the first text/plain part, then text/html stripped to plain text, and
// finally the snippet.
func getMessageBody(msg *gmail.Message) string {
	payload := msg.Payload
	if payload == nil {
		return msg.Snippet
	}

	if payload.Body != nil && payload.Body.Data != "" {
		if decoded := decodeBase64(payload.Body.Data); decoded != "" {
			return decoded
		}
	}

	if plain := findPart(payload.Parts, "text/plain"); plain != "" {
		return plain
	}

	if html := findPart(payload.Parts, "text/html"); html != "" {
		return stripHTML(html)
	}

	return msg.Snippet
}

// findPart walks the MIME tree depth-first and returns the first decodable
// part with the wanted type.
func findPart(parts []*gmail.MessagePart, mimeType string) string {
	for _, part := range parts {
		if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
			if decoded := decodeBase64(part.Body.Data); decoded != "" {
				return decoded
			}
		}
		if len(part.Parts) > 0 {
			if found := findPart(part.Parts, mimeType); found != "" {
				return found
			}
		}
	}
	return ""
}

func decodeBase64(data string) string {
	// Gmail uses URL-safe base64
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		// Some senders omit padding
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}

// stripHTML removes tags, unescapes the common entities and collapses
// whitespace.
func stripHTML(html string) string {
	text := htmlTagRe.ReplaceAllString(html, " ")
	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
	)
	text = replacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
