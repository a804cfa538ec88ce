package timetable

// User-facing display strings. These are fixed product copy; internal callers
// work with typed errors and only the presentation boundary renders these.
const (
	MsgEmptyTimetable     = "No events found in the timetable. Please check if the file is valid."
	MsgOnlyPastEvents     = "This timetable contains only past events. Please upload your current timetable."
	MsgMalformedTimetable = "Failed to parse the timetable file. Please make sure it's a valid ICS file."
	MsgNoUpcomingClasses  = "I couldn't find any upcoming classes in your timetable."
	MsgApology            = "I'm sorry, I couldn't process your question. Please make sure you've uploaded a valid timetable and check your API key."
	MsgEmptyAnswer        = "I'm sorry, I couldn't find an answer to your question."

	// MsgNoClassesOnDayFmt takes the lowercase weekday name.
	MsgNoClassesOnDayFmt = "You don't have any classes scheduled for %s."
)

// NextClassKeywords trigger the local general next-class intent.
var NextClassKeywords = []string{"next class", "next lecture", "upcoming class", "upcoming lecture"}

// NextClassPhrase is the only wording that, combined with a weekday name,
// triggers the day-qualified intent. The broader keyword set above does not.
const NextClassPhrase = "next class"

// PromptTimetableQA is the fixed instructional prompt for the external
// answerer. The first placeholder takes the serialized schedule, the second
// the question text.
const PromptTimetableQA = `You are a helpful student timetable assistant. Please answer the following question about the student's schedule.
The schedule data is provided in JSON format below:

%s

Question: %s

Please provide a clear and concise answer based on the schedule data. If the information is not available in the schedule, please say so.`

// EventDateFormat renders event start times in answers,
// e.g. "Monday, April 1 at 9:00 AM".
const EventDateFormat = "Monday, January 2 at 3:04 PM"
