package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinemax/internal/service"
	"github.com/user/cinemax/internal/utils"
)

// SubmitRecommendation 公开求片
func (h *Handler) SubmitRecommendation(c *gin.Context) {
	var in service.RecommendationInput
	if !h.bindJSON(c, &in) {
		return
	}

	rec, err := h.Recommendations.Submit(c.Request.Context(), in, c.ClientIP())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"message": "Recommendation submitted successfully", "recommendation": rec})
}

// AdminRecommendations 求片列表
func (h *Handler) AdminRecommendations(c *gin.Context) {
	recs, err := h.Recommendations.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, recs)
}

type fulfillRequest struct {
	MovieSlug string `json:"movieSlug" binding:"slug"`
}

// AdminRecommendationAdded 标记求片已上架
func (h *Handler) AdminRecommendationAdded(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req fulfillRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}

	rec, err := h.Recommendations.Fulfill(c.Request.Context(), id, req.MovieSlug)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, rec)
}

// AdminRecommendationDelete 删除已上架的求片
func (h *Handler) AdminRecommendationDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.Recommendations.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	utils.Message(c, "Recommendation deleted successfully")
}

// MyUpdates 请求者已上架的求片（userId 或 IP 匹配）
func (h *Handler) MyUpdates(c *gin.Context) {
	recs, err := h.Recommendations.MyUpdates(c.Request.Context(), c.Query("userId"), c.ClientIP())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, recs)
}

type acknowledgeRequest struct {
	IDs []int `json:"ids" binding:"required,min=1,max=100"`
}

// AcknowledgeUpdates 客户端确认已看到上架提醒
func (h *Handler) AcknowledgeUpdates(c *gin.Context) {
	var req acknowledgeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	n, err := h.Recommendations.Acknowledge(c.Request.Context(), req.IDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"updated": n})
}

// SubmitContact 联系表单
func (h *Handler) SubmitContact(c *gin.Context) {
	var in service.ContactInput
	if !h.bindJSON(c, &in) {
		return
	}

	if _, err := h.Contacts.Submit(c.Request.Context(), in); err != nil {
		h.respondError(c, err)
		return
	}
	utils.Created(c, gin.H{"message": "Message sent successfully"})
}

// AdminContacts 留言列表
func (h *Handler) AdminContacts(c *gin.Context) {
	list, err := h.Contacts.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, list)
}

// AdminContactDelete 删除留言
func (h *Handler) AdminContactDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.Contacts.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	utils.Message(c, "Message deleted successfully")
}
