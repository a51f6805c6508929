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

func ListAssemblies(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := listAssembliesHandler{ctx: ctx, db: db}

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

type listAssembliesHandler struct {
	ctx *gin.Context
	db  *gorm.DB

	// params
	isolateID string
	limit     int
}

type listAssemblyItem struct {
	ID                uint   `json:"id"`
	IsolateID         string `json:"isolate_id"`
	RunNumber         string `json:"run_number"`
	SunbeamVersion    string `json:"sunbeam_version"`
	SbxSgaVersion     string `json:"sbx_sga_version"`
	SunbeamOutputPath string `json:"sunbeam_output_path"`
	NcbiID            string `json:"ncbi_id"`
}

func (h *listAssembliesHandler) checkParam() error {
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

func (h *listAssembliesHandler) produce() ([]listAssemblyItem, error) {
	assemblies, err := marcdb.GetAssemblies(h.db, h.isolateID, h.limit)
	if err != nil {
		return nil, utils.WrapError(err, "select assemblies fail")
	}

	ret := make([]listAssemblyItem, 0, len(assemblies))
	for _, assembly := range assemblies {
		ret = append(ret, listAssemblyItem{
			ID:                assembly.ID,
			IsolateID:         assembly.IsolateID,
			RunNumber:         assembly.RunNumber,
			SunbeamVersion:    assembly.SunbeamVersion,
			SbxSgaVersion:     assembly.SbxSgaVersion,
			SunbeamOutputPath: assembly.SunbeamOutputPath,
			NcbiID:            assembly.NcbiID,
		})
	}
	return ret, nil
}
