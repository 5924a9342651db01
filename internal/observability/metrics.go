package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quorum_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// QuestionsCreated counts questions persisted via the create path.
	QuestionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quorum_questions_created_total",
		Help: "Total number of questions created",
	})

	// AnswersCreated counts answers persisted via the create path.
	AnswersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quorum_answers_created_total",
		Help: "Total number of answers created",
	})

	// VotesRecorded counts vote increments by entity and direction.
	VotesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quorum_votes_recorded_total",
		Help: "Total number of vote increments by entity and direction",
	}, []string{"entity", "direction"})

	// ReputationAwarded counts reputation points granted to profiles.
	ReputationAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quorum_reputation_awarded_total",
		Help: "Total reputation points granted to profiles",
	})
)
