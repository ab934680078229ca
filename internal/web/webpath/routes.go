package webpath

const (
	Api = "/api"

	ApiElo        = Api + "/elo"
	ApiEloOutcome = ApiElo + "/outcome"
	ApiEloPoints  = ApiElo + "/points"
	ApiEloParams  = ApiElo + "/params"
)

func Path() map[string]string {
	return map[string]string{
		"Outcome": ApiEloOutcome,
		"Points":  ApiEloPoints,
		"Params":  ApiEloParams,
	}
}
