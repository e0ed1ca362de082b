package trivia

// Collection is the ordered set of currently loaded questions.
//
// Order reflects the order received from the most recent successful fetch.
// The collection is only ever replaced wholesale; it is never partially
// updated, so guesses reset implicitly on refresh.
type Collection struct {
	questions []*Question
}

// Replace discards the current contents and installs qs.
func (c *Collection) Replace(qs []*Question) {
	c.questions = qs
}

// Questions returns the questions in fetch order.
func (c *Collection) Questions() []*Question {
	return c.questions
}

// Len returns the number of questions currently loaded.
func (c *Collection) Len() int {
	return len(c.questions)
}
