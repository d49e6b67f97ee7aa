// Package imapmail fetches messages over IMAP for mailboxes that are not on
// Gmail. It satisfies the same provider contract as pkg/gmail; the bearer
// token argument is unused because IMAP credentials come from configuration.
package imapmail

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"

	emaildomain "wedding-planner-backend/internal/email/domain"
)

type Service struct {
	host     string
	port     string
	username string
	password string
}

func NewService(host, port, username, password string) *Service {
	return &Service{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// FetchMessages retrieves the newest limit messages from INBOX, newest first.
// The query parameter is ignored; IMAP SEARCH is not wired up.
func (s *Service) FetchMessages(ctx context.Context, _ string, limit int, _ string) ([]*emaildomain.Message, error) {
	if limit <= 0 {
		limit = 10
	}

	c, err := client.DialTLS(s.host+":"+s.port, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to IMAP server: %v", err)
	}
	defer c.Logout()

	if err := c.Login(s.username, s.password); err != nil {
		return nil, fmt.Errorf("IMAP login failed: %v", err)
	}

	mbox, err := c.Select("INBOX", true)
	if err != nil {
		return nil, fmt.Errorf("unable to select INBOX: %v", err)
	}

	if mbox.Messages == 0 {
		return []*emaildomain.Message{}, nil
	}

	from := uint32(1)
	if mbox.Messages > uint32(limit) {
		from = mbox.Messages - uint32(limit) + 1
	}
	seqset := new(imap.SeqSet)
	seqset.AddRange(from, mbox.Messages)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	fetched := make(chan *imap.Message, limit)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, fetched)
	}()

	messages := make([]*emaildomain.Message, 0, limit)
	for msg := range fetched {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		converted, err := convertMessage(msg, section)
		if err != nil {
			return nil, err
		}
		messages = append(messages, converted)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("unable to fetch messages: %v", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Date.After(messages[j].Date)
	})

	return messages, nil
}

func convertMessage(msg *imap.Message, section *imap.BodySectionName) (*emaildomain.Message, error) {
	env := msg.Envelope
	if env == nil {
		return nil, fmt.Errorf("message %d has no envelope", msg.SeqNum)
	}

	converted := &emaildomain.Message{
		ID:      strings.Trim(env.MessageId, "<>"),
		From:    formatAddresses(env.From),
		To:      formatAddresses(env.To),
		Subject: env.Subject,
		Date:    env.Date,
	}

	if body := msg.GetBody(section); body != nil {
		converted.Body = extractBody(body)
	}

	converted.Snippet = makeSnippet(converted.Body)
	return converted, nil
}

// extractBody reads the MIME parts preferring text/plain, falling back to
// stripped text/html.
func extractBody(r io.Reader) string {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return ""
	}

	var htmlBody string
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}

		header, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		contentType, _, err := header.ContentType()
		if err != nil {
			continue
		}

		data, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		switch contentType {
		case "text/plain":
			return string(data)
		case "text/html":
			if htmlBody == "" {
				htmlBody = string(data)
			}
		}
	}

	if htmlBody != "" {
		return strings.Join(strings.Fields(stripTags(htmlBody)), " ")
	}
	return ""
}

func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatAddresses(addrs []*imap.Address) string {
	formatted := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.PersonalName != "" {
			formatted = append(formatted, fmt.Sprintf("%s <%s>", a.PersonalName, a.Address()))
		} else {
			formatted = append(formatted, a.Address())
		}
	}
	return strings.Join(formatted, ", ")
}

func makeSnippet(body string) string {
	snippet := strings.Join(strings.Fields(body), " ")
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	return snippet
}
