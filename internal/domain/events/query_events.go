package events

// QueryExecuted is emitted when a query is submitted to the answer
// generation pipeline.
type QueryExecuted struct {
	DomainEvent
	QueryID  string `json:"query_id"`
	SpaceID  string `json:"space_id"`
	Question string `json:"question"`
	UserID   string `json:"user_id"`
}

func NewQueryExecuted(queryID, tenantID, spaceID, question, userID string) (QueryExecuted, error) {
	op := "events.new_query_executed"
	base, err := newDomainEvent("QueryExecuted", queryID, tenantID)
	if err != nil {
		return QueryExecuted{}, err
	}
	if err := requireNonEmpty(op, "query_id", queryID); err != nil {
		return QueryExecuted{}, err
	}
	if err := requireNonEmpty(op, "space_id", spaceID); err != nil {
		return QueryExecuted{}, err
	}
	if err := requireBounded(op, "question", question, 1000); err != nil {
		return QueryExecuted{}, err
	}
	if err := requireNonEmpty(op, "user_id", userID); err != nil {
		return QueryExecuted{}, err
	}
	return QueryExecuted{
		DomainEvent: base,
		QueryID:     queryID,
		SpaceID:     spaceID,
		Question:    question,
		UserID:      userID,
	}, nil
}

// QueryCompleted is emitted when query processing completes successfully.
type QueryCompleted struct {
	DomainEvent
	QueryID          string `json:"query_id"`
	AnswerLength     int    `json:"answer_length"`
	CitationCount    int    `json:"citation_count"`
	ProcessingTimeMS int    `json:"processing_time_ms"`
	TokensUsed       int    `json:"tokens_used"`
}

func NewQueryCompleted(queryID, tenantID string, answerLength, citationCount, processingTimeMS, tokensUsed int) (QueryCompleted, error) {
	op := "events.new_query_completed"
	base, err := newDomainEvent("QueryCompleted", queryID, tenantID)
	if err != nil {
		return QueryCompleted{}, err
	}
	if err := requireNonEmpty(op, "query_id", queryID); err != nil {
		return QueryCompleted{}, err
	}
	if err := requireNonNegative(op, "answer_length", answerLength); err != nil {
		return QueryCompleted{}, err
	}
	if err := requireNonNegative(op, "citation_count", citationCount); err != nil {
		return QueryCompleted{}, err
	}
	if err := requirePositive(op, "processing_time_ms", processingTimeMS); err != nil {
		return QueryCompleted{}, err
	}
	if err := requireNonNegative(op, "tokens_used", tokensUsed); err != nil {
		return QueryCompleted{}, err
	}
	return QueryCompleted{
		DomainEvent:      base,
		QueryID:          queryID,
		AnswerLength:     answerLength,
		CitationCount:    citationCount,
		ProcessingTimeMS: processingTimeMS,
		TokensUsed:       tokensUsed,
	}, nil
}

// QueryFailed is emitted when query processing fails.
type QueryFailed struct {
	DomainEvent
	QueryID      string `json:"query_id"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

func NewQueryFailed(queryID, tenantID, errorType, errorMessage string) (QueryFailed, error) {
	op := "events.new_query_failed"
	base, err := newDomainEvent("QueryFailed", queryID, tenantID)
	if err != nil {
		return QueryFailed{}, err
	}
	if err := requireNonEmpty(op, "query_id", queryID); err != nil {
		return QueryFailed{}, err
	}
	if err := requireBounded(op, "error_type", errorType, 50); err != nil {
		return QueryFailed{}, err
	}
	if err := requireBounded(op, "error_message", errorMessage, 500); err != nil {
		return QueryFailed{}, err
	}
	return QueryFailed{
		DomainEvent:  base,
		QueryID:      queryID,
		ErrorType:    errorType,
		ErrorMessage: errorMessage,
	}, nil
}
