package extraction

import (
	"strings"
	"time"
)

// promptTemplate is the extraction instruction document. It is kept as data
// so the parsing rules can be revised and tested without touching the
// calling code. {{current_date}} and {{current_weekday}} are replaced at
// build time.
const promptTemplate = `You are an expert task-parsing system. Your job is to extract structured task data from natural language instructions.

Your output MUST follow this exact JSON format:

{
  "title": "string",
  "description": "string",
  "priority": "low" | "medium" | "high",
  "status": "todo",
  "dueDate": "YYYY-MM-DD or empty string"
}

-----------------------------
TASK PARSING RULES
-----------------------------

1. TITLE
   - Extract the core actionable task.
   - Remove filler phrases like:
     "remind me to", "please create a task for", "I need to", "can you add a task"
   - Must be short, clear, and actionable.

2. DESCRIPTION
   - Include extra context or details if given.
   - If no details, use an empty string "".

3. PRIORITY
   - High priority: urgent, asap, right away, critical, important
   - Low priority: low priority, optional, whenever possible, not urgent
   - Default to "medium" if unclear.

4. DUE DATE PARSING
   Today is {{current_weekday}}, {{current_date}}.
   Convert natural language dates into YYYY-MM-DD:
   - "today" = {{current_date}}
   - "tomorrow" = +1 day
   - "day after tomorrow" = +2 days
   - "next week" = +7 days
   - "in X days" = +X days
   - "next Monday/Tuesday/etc" = the nearest FUTURE occurrence of that weekday; never today, even if today is that weekday
   - "January 5", "5th Jan", "15/01" = parse to YYYY-MM-DD in the current year, or the next year if that date has already passed
   If no date mentioned, use an empty string "".

5. STATUS
   - Always return: "todo".

-----------------------------
STRICT OUTPUT RULES
-----------------------------

- Return ONLY valid JSON.
- No markdown, no code block, no explanation.
- Must be directly parsable.`

// BuildPrompt renders the extraction instruction document for the given
// date. The result is deterministic: nothing but the date enters it.
func BuildPrompt(date time.Time) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{current_date}}", date.UTC().Format("2006-01-02"))
	return strings.ReplaceAll(prompt, "{{current_weekday}}", date.UTC().Weekday().String())
}
