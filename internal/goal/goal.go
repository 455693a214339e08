package goal

// Goal is a stored goal record as the backend returns it. A record
// carries either IconID or GoalImg, never both.
type Goal struct {
	ID               int64   `json:"id"`
	GoalName         string  `json:"goalName"`
	GoalMoney        int64   `json:"goalMoney"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	GoalType         int     `json:"goalType"`
	IconID           *int    `json:"iconId"`
	GoalImg          *string `json:"goalImg"`
	ConnectedAccount int64   `json:"connectedAccount"`
}

// Request is the create/update body sent to the backend. It is built
// from a Form at submission time and never kept around.
type Request struct {
	GoalName         string  `json:"goalName"`
	GoalMoney        int64   `json:"goalMoney"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	GoalType         int     `json:"goalType"`
	IconID           *int    `json:"iconId"`
	GoalImg          *string `json:"goalImg"`
	ConnectedAccount int64   `json:"connectedAccount"`
}
