package api

import "time"

func (handler *Handler) parsePeriodRange(payload periodPayload) (time.Time, time.Time, error) {
	start, err := parseDayParam(payload.StartDate, handler.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDayParam(payload.EndDate, handler.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
