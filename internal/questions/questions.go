package questions

// Question is one quiz item: a prompt, its alternatives, and the index of
// the correct alternative.
type Question struct {
	Question     string   `json:"question"`
	Alternatives []string `json:"alternatives"`
	Correct      int      `json:"correct"`
}

// Default returns the built-in question bank. The bank is process-owned and
// shared read-only by every room; callers must not modify it.
func Default() []Question {
	return defaultBank
}

var defaultBank = []Question{
	{
		Question:     "What does HTML stand for?",
		Alternatives: []string{"Hyper Text Markup Language", "Home Tool Markup Language", "Hyperlinks and Text Markup Language", "Hyper Tool Multi Language"},
		Correct:      0,
	},
	{
		Question:     "Which CSS property is used to change the text color?",
		Alternatives: []string{"text-color", "font-color", "color", "text-style"},
		Correct:      2,
	},
	{
		Question:     "What does CSS stand for?",
		Alternatives: []string{"Creative Style Sheets", "Cascading Style Sheets", "Computer Style Sheets", "Colorful Style Sheets"},
		Correct:      1,
	},
	{
		Question:     "Which HTML tag is used to create a hyperlink?",
		Alternatives: []string{"<link>", "<a>", "<href>", "<url>"},
		Correct:      1,
	},
	{
		Question:     "What is the correct way to write a JavaScript array?",
		Alternatives: []string{"var colors = 'red', 'green', 'blue'", "var colors = (1:'red', 2:'green', 3:'blue')", "var colors = ['red', 'green', 'blue']", "var colors = 1 = ('red'), 2 = ('green'), 3 = ('blue')"},
		Correct:      2,
	},
	{
		Question:     "Which event occurs when the user clicks on an HTML element?",
		Alternatives: []string{"onchange", "onclick", "onmouseclick", "onmouseover"},
		Correct:      1,
	},
	{
		Question:     "What does DOM stand for?",
		Alternatives: []string{"Document Object Model", "Display Object Management", "Dynamic Object Model", "Document Oriented Model"},
		Correct:      0,
	},
	{
		Question:     "Which method is used to add an element at the end of an array?",
		Alternatives: []string{"push()", "add()", "append()", "insert()"},
		Correct:      0,
	},
	{
		Question:     "What is the correct way to write a CSS comment?",
		Alternatives: []string{"// this is a comment", "/* this is a comment */", "<!-- this is a comment -->", "* this is a comment *"},
		Correct:      1,
	},
	{
		Question:     "Which HTML attribute specifies an alternate text for an image?",
		Alternatives: []string{"title", "src", "alt", "longdesc"},
		Correct:      2,
	},
}
