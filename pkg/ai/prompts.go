package ai

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// summaryBodyLimit bounds the portion of an email body embedded in
	// the summarization prompt.
	summaryBodyLimit = 3000
	// extractBodyLimit bounds each body in a task-extraction batch.
	extractBodyLimit = 1000
	// maxEmailsPerExtract caps the batch size of one extraction call.
	maxEmailsPerExtract = 10

	summaryMaxTokens = 500
	extractMaxTokens = 1000
)

func buildSummarizePrompt(from, subject, body string) string {
	return fmt.Sprintf(`You are a wedding planning assistant. Focus on extracting ACTION ITEMS from this email.

From: %s
Subject: %s
Body:
%s

Respond in JSON format:
- summary: Focus on what ACTION is needed (e.g., "Venue wants deposit by Friday" or "Need to confirm guest count"). If no action needed, briefly state the email's purpose.
- actionItems: Array of specific tasks (e.g., ["Send $500 deposit to venue by Jan 20", "Reply to confirm appointment time"]). Be specific with amounts, dates, names.
- hasActionItems: true if action is required, false if informational only
- priority: "high" if has deadline within 2 weeks or requires immediate response, "medium" if needs attention soon, "low" if informational
- category: One of: "venue", "catering", "photography", "flowers", "music", "attire", "invitations", "guest_management", "honeymoon", "budget", "general"

Return only valid JSON, no other text.`, from, subject, truncate(body, summaryBodyLimit))
}

func buildExtractPrompt(emails []EmailDescriptor) string {
	descriptors := make([]string, len(emails))
	for i, e := range emails {
		descriptors[i] = fmt.Sprintf("Email %d:\nFrom: %s\nSubject: %s\nDate: %s\nBody: %s",
			i+1, e.From, e.Subject, e.Date.Format("2006-01-02"), truncate(e.Body, extractBodyLimit))
	}

	return fmt.Sprintf(`You are a helpful wedding planning assistant. Review these wedding-related emails and extract any action items or tasks.

%s

Extract specific, actionable tasks from these emails. For each task:
- title: Clear, actionable task description (e.g., "Respond to Rosewood Venue quote by Friday")
- dueDate: If mentioned or implied (ISO date format YYYY-MM-DD), otherwise null
- priority: "high" if has a deadline or requires quick response, "medium" if important, "low" if optional
- source: Brief description of which email (e.g., "Rosewood Venue inquiry")

Return a JSON array of tasks. Only include real, specific action items - not general observations.
Return only valid JSON array, no other text.`, strings.Join(descriptors, "\n\n---\n\n"))
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
