package mazeapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const binaryContentType = "application/octet-stream"

// MazeController exposes maze generation and retrieval.
type MazeController struct {
	mazeService i.MazeService
	writeAccess gin.HandlerFunc
}

// NewMazeController initializes a MazeController. writeAccess guards the
// routes that change a stored maze and may be nil.
func NewMazeController(ms i.MazeService, writeAccess gin.HandlerFunc) *MazeController {
	if writeAccess == nil {
		writeAccess = func(*gin.Context) {}
	}
	return &MazeController{
		mazeService: ms,
		writeAccess: writeAccess,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/binary", mc.binary)
		mazes.GET("/:ID/ascii", mc.ascii)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes", mc.writeAccess)
	{
		mazes.PUT("/:ID/regenerate", mc.regenerate)
		mazes.DELETE("/:ID", mc.delete)
	}
}

func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := mc.mazeService.Generate(ctx.Request.Context(), request.config())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(rec))
}

func (mc *MazeController) byID(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	rec, err := mc.mazeService.ByID(ctx.Request.Context(), ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(rec))
}

func (mc *MazeController) binary(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	data, err := mc.mazeService.Binary(ctx.Request.Context(), ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=\""+ID.String()+".maze\"")
	ctx.Data(http.StatusOK, binaryContentType, data)
}

func (mc *MazeController) ascii(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	text, err := mc.mazeService.Render(ctx.Request.Context(), ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, text)
}

func (mc *MazeController) regenerate(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	rec, err := mc.mazeService.Regenerate(ctx.Request.Context(), ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(rec))
}

func (mc *MazeController) delete(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := mc.mazeService.Delete(ctx.Request.Context(), ID); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// pathID parses the ID path parameter, answering 400 when it is malformed.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

// abortWithError maps service errors to HTTP statuses.
func abortWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrUnsupportedShape),
		errors.Is(err, maze.ErrUnknownStrategy):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeLocked):
		ctx.JSON(http.StatusConflict, gin.H{"error": dmn.ErrMazeLocked.Error()})
	default:
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}
