package handlers

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	"github.com/BruksfildServices01/loja-web/internal/httpresp"
	"github.com/BruksfildServices01/loja-web/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	tz   *timezone.Formatter
}

// tz é o mesmo fuso das datas exibidas, para o filtro de dia bater com a tela.
func NewAuditLogsHandler(logs *audit.Logger, tz *timezone.Formatter) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, tz: tz}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Filtros de data (YYYY-MM-DD); inválidos são ignorados
	// --------------------------------------------------

	fromStr := c.Query("from")
	if from, err := h.tz.ParseDate(fromStr); err == nil {
		f.From = &from
	} else {
		fromStr = ""
	}

	toStr := c.Query("to")
	if to, err := h.tz.ParseDate(toStr); err == nil {
		f.To = &to
	} else {
		toStr = ""
	}

	result, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "auditoria/index.html", gin.H{
		"Titulo":   "Auditoria",
		"Pagina":   result,
		"Filtro":   f,
		"De":       fromStr,
		"Ate":      toStr,
		"Anterior": pageURL(c, result.Page-1),
		"Proxima":  pageURL(c, result.Page+1),
	})
}

func pageURL(c *gin.Context, page int) string {
	q := url.Values{}
	for k, v := range c.Request.URL.Query() {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))
	return "/auditoria?" + q.Encode()
}
