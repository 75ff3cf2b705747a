package bookingRepository

import (
	jsoniter "github.com/json-iterator/go"

	"RestaurantAssistant/internal/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func encodeSession(s *entity.BookingSession) ([]byte, error) {
	return json.Marshal(s)
}

func decodeSession(data []byte) (*entity.BookingSession, error) {
	var s entity.BookingSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
