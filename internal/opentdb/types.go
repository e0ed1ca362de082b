package opentdb

// Result is one raw question record exactly as the Open Trivia DB API
// returns it, using the source field names. Text fields are HTML-escaped;
// the mapping layer unescapes them.
type Result struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// response is the API envelope. A non-zero response code means the API
// refused the request even though the HTTP status was 200.
type response struct {
	ResponseCode int      `json:"response_code"`
	Results      []Result `json:"results"`
}

// responseCodeText maps documented Open Trivia DB response codes to
// human-readable messages.
var responseCodeText = map[int]string{
	1: "no results for the requested query",
	2: "invalid request parameter",
	3: "session token not found",
	4: "session token exhausted",
	5: "rate limited",
}
