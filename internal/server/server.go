package server

// Server объединяет HTTP-серверы конкретных сущностей. Сейчас он один:
// оценка стоимости вместе со списком районов.
type Server struct {
	PredictionServer
}

func NewServer(
	predictionServer PredictionServer,
) Server {
	return Server{
		PredictionServer: predictionServer,
	}
}
