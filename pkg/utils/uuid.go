package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateID returns a short random ID, used to tag the logs of a run.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
