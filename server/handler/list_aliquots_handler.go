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

func ListAliquots(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := listAliquotsHandler{ctx: ctx, db: db}

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

type listAliquotsHandler struct {
	ctx *gin.Context
	db  *gorm.DB

	// params
	isolateID string
	limit     int
}

type listAliquotItem struct {
	ID          uint   `json:"id"`
	IsolateID   string `json:"isolate_id"`
	TubeBarcode string `json:"tube_barcode"`
	BoxName     string `json:"box_name"`
}

func (h *listAliquotsHandler) checkParam() error {
	h.isolateID = h.ctx.Query("isolate_id")

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

func (h *listAliquotsHandler) produce() ([]listAliquotItem, error) {
	aliquots, err := marcdb.GetAliquots(h.db, h.isolateID, h.limit)
	if err != nil {
		return nil, utils.WrapError(err, "select aliquots fail")
	}

	ret := make([]listAliquotItem, 0, len(aliquots))
	for _, aliquot := range aliquots {
		ret = append(ret, listAliquotItem{
			ID:          aliquot.ID,
			IsolateID:   aliquot.IsolateID,
			TubeBarcode: aliquot.TubeBarcode,
			BoxName:     aliquot.BoxName,
		})
	}
	return ret, nil
}
