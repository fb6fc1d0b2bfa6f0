package overrides

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/localscene/events-backend/internal/model"
)

type overrideDTO struct {
	ID                int64
	EventID           int64
	DateKey           string
	Status            string
	OverridePatch     []byte
	OverrideStartTime string
}

func mapToOverride(dto *overrideDTO) (*model.OccurrenceOverride, error) {
	patch := model.OverridePatch{}
	if len(dto.OverridePatch) != 0 {
		if err := json.Unmarshal(dto.OverridePatch, &patch); err != nil {
			return nil, fmt.Errorf("parse override patch for %v/%v: %w", dto.EventID, dto.DateKey, err)
		}
	}

	return &model.OccurrenceOverride{
		ID: dto.ID,
		OverrideCreate: model.OverrideCreate{
			EventID:           strconv.FormatInt(dto.EventID, 10),
			DateKey:           dto.DateKey,
			Status:            model.OverrideStatus(dto.Status),
			Patch:             patch,
			OverrideStartTime: dto.OverrideStartTime,
		},
	}, nil
}
