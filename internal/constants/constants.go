package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	// ProfileMatchCount is how many recent match IDs a profile lookup returns.
	ProfileMatchCount = 10

	// MaxBatchSize caps how many match IDs the batch endpoints will fetch.
	MaxBatchSize = 20

	// RecentChampionLimit caps the distinct recently-played champion list.
	RecentChampionLimit = 10

	// TopChampionLimit is how many champion summaries the stats output keeps.
	TopChampionLimit = 5
)

const (
	// QueueRankedSolo is Riot's queue ID for ranked solo/duo.
	QueueRankedSolo = 420

	// QueueTypeRankedSolo is the queue type string used in league entries.
	QueueTypeRankedSolo = "RANKED_SOLO_5x5"
)

const (
	// LPWinDelta and LPLossDelta are the constant per-game deltas used by
	// the LP history estimation. Real LP changes vary with MMR; these are
	// deliberately rough averages.
	LPWinDelta  = 20
	LPLossDelta = 15
)
