package processor

import (
	"crypto/subtle"

	"github.com/rs/zerolog/log"
)

const subscribeMode = "subscribe"

// Verify completes a webhook subscription handshake and returns the challenge to echo.
func (mp *MessageProcessor) Verify(req VerificationRequest) (string, error) {
	tokenMatches := mp.verifyToken != "" &&
		subtle.ConstantTimeCompare([]byte(req.Token), []byte(mp.verifyToken)) == 1

	log.Info().
		Str("mode", req.Mode).
		Bool("token_matches", tokenMatches).
		Str("challenge", req.Challenge).
		Msg("Webhook verification request")

	if req.Mode == "" || req.Token == "" {
		log.Warn().Msg("Webhook verification failed: missing mode or token")
		return "", ErrVerificationIncomplete
	}

	if req.Mode != subscribeMode || !tokenMatches {
		log.Warn().Msg("Webhook verification failed: mode or token mismatch")
		return "", ErrVerificationMismatch
	}

	log.Info().Msg("Webhook verified successfully")
	return req.Challenge, nil
}
