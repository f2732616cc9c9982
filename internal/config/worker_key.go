package config

type WorkerKeyStruct struct {
	ArchiveGamesQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ArchiveGamesQueue: "archive_games_queue",
}
