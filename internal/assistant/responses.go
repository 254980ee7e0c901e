package assistant

// Fixed response texts. The greeting, farewell, and unknown lists are served
// round-robin, each with its own counter.

var greetingResponses = []string{
	"Hello! I'm your Campus Voice Assistant. How can I help you today?",
	"Hi there! Welcome to Campus Assistant. What would you like to know?",
	"Good day! I'm here to help you with campus information. What do you need?",
}

var farewellResponses = []string{
	"Goodbye! Have a great day!",
	"Thank you for using Campus Assistant. Bye!",
	"Take care! Feel free to ask me anytime.",
}

var unknownResponses = []string{
	"I'm sorry, I didn't quite understand that. Could you please rephrase?",
	"I'm not sure what you're asking. Try asking about classes, exams, departments, or facilities.",
	"Could you please be more specific? I can help with timetables, exams, department info, and campus facilities.",
}

const emptyInputResponse = "I didn't catch that. Could you please repeat?"

const faqFallbackResponse = "I couldn't find specific information about that. Please contact the respective office for more details."

const helpResponse = `Campus Voice Assistant - Help

You can ask me about:

Timetable / Classes
  - "What are today's classes?"
  - "CSE schedule for Monday"
  - "Tomorrow's timetable for ECE"

Exams
  - "What is the exam schedule?"
  - "Tomorrow's exams"
  - "CSE exam dates"

Departments
  - "Tell me about CSE department"
  - "Who is the HOD of ECE?"
  - "Department contacts"

Facilities
  - "Library timings"
  - "Canteen location"
  - "Hostel information"
  - "Sports facilities"
  - "Medical center"

Events
  - "Upcoming events"
  - "College fest details"

General Info
  - "How to apply for leave?"
  - "Attendance requirements"
  - "Fee structure"

Say 'quit' or 'exit' to stop.`
