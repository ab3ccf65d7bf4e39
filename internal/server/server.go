package server

// Server объединяет HTTP-серверы отдельных ресурсов. Сейчас ресурс один:
// запущенные экземпляры мини-приложения.
type Server struct {
	SessionServer
}

func NewServer(
	sessionServer SessionServer,
) Server {
	return Server{
		SessionServer: sessionServer,
	}
}
