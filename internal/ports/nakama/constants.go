package nakama

const (
	// RpcDecide replays a judge log and answers with the bot's bid or play.
	RpcDecide = "landlord_decide"
	// RpcEvaluate scores a bare hand.
	RpcEvaluate = "landlord_evaluate"

	// EnvConfigPath names the runtime env entry pointing at the engine config file.
	EnvConfigPath = "landlord_config_path"
)

// gRPC status codes used for runtime errors.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
