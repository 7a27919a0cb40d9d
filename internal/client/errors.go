package client

import "fmt"

// RequestError - сервер ответил статусом вне 2xx.
type RequestError struct {
	StatusCode int
	// Detail - поле error из тела ответа, если сервер его прислал.
	Detail string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// TransportError - запрос не дошел до сервера или ответ не удалось прочитать.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
