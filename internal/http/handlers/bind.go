package handlers

import "github.com/gin-gonic/gin"

// BindJSON decodes the body into out and answers the request itself when
// the body is not valid JSON for the target shape.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		RespondBadRequest(ctx, "Invalid request body")

		return false
	}

	return true
}
