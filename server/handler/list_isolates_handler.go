package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PennChopMicrobiomeProgram/marc-db/logging"
	"github.com/PennChopMicrobiomeProgram/marc-db/repository/marcdb"
	"github.com/PennChopMicrobiomeProgram/marc-db/server/common"
	"github.com/PennChopMicrobiomeProgram/marc-db/utils"
)

func ListIsolates(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := listIsolatesHandler{ctx: ctx, db: db}

		if err := handler.checkParam(); err != nil {
			logging.Default().WithError(err).Errorf("parse req error: %s", err.Error())
			ctx.JSON(http.StatusBadRequest, common.MakeBadParamResp())
			return
		}

		resp, err := handler.produce()
		if err != nil {
			logging.Default().WithError(err).Errorf("produce error: %s", err.Error())
			ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
			return
		}

		ctx.JSON(http.StatusOK, common.MakeSuccessResp(resp))
	}
}

type listIsolatesHandler struct {
	ctx *gin.Context
	db  *gorm.DB

	// params
	sampleID string
	limit    int
}

type listIsolateItem struct {
	SampleID          string `json:"sample_id"`
	SubjectID         int    `json:"subject_id"`
	SpecimenID        int    `json:"specimen_id"`
	SuspectedOrganism string `json:"suspected_organism"`
	SpecialCollection string `json:"special_collection"`
	ReceivedDate      string `json:"received_date,omitempty"`
	CryobankingDate   string `json:"cryobanking_date,omitempty"`
}

func (h *listIsolatesHandler) checkParam() error {
	h.sampleID = h.ctx.Query("sample_id")

	limit := h.ctx.Query("limit")
	if len(limit) == 0 {
		return nil
	}

	limitInteger, err := strconv.Atoi(limit)
	if err != nil {
		return utils.WrapErrorf(err, "atoi(%#v) fail", limit)
	}
	if limitInteger < 0 {
		return utils.WrapErrorf(common.ErrRequestParamInvalid, "limit(%d) cannot be negative", limitInteger)
	}

	h.limit = limitInteger
	return nil
}

func (h *listIsolatesHandler) produce() ([]listIsolateItem, error) {
	isolates, err := marcdb.GetIsolates(h.db, h.sampleID, h.limit)
	if err != nil {
		return nil, utils.WrapError(err, "select isolates fail")
	}

	ret := make([]listIsolateItem, 0, len(isolates))
	for _, isolate := range isolates {
		item := listIsolateItem{
			SampleID:          isolate.SampleID,
			SubjectID:         isolate.SubjectID,
			SpecimenID:        isolate.SpecimenID,
			SuspectedOrganism: isolate.SuspectedOrganism,
			SpecialCollection: isolate.SpecialCollection,
		}
		if isolate.ReceivedDate != nil {
			item.ReceivedDate = isolate.ReceivedDate.Format("2006-01-02")
		}
		if isolate.CryobankingDate != nil {
			item.CryobankingDate = isolate.CryobankingDate.Format("2006-01-02")
		}
		ret = append(ret, item)
	}
	return ret, nil
}
