package server

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"io"
	"net/http"
	"strconv"
	"vincit.fi/image-preview/api"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/backend/preview"
	"vincit.fi/image-preview/common/logger"
	"vincit.fi/image-preview/common/metrics"
)

const (
	maxUploadSize = 32 << 20
	// Room for the multipart boundaries and headers around the file
	maxRequestSize = maxUploadSize + 1<<20
)

type Server struct {
	engine *gin.Engine
}

func NewServer(previews api.PreviewService, metrics *metrics.Metrics, defaultFrame apitype.Size) *Server {
	engine := gin.New()
	engine.Use(gin.LoggerWithWriter(logger.Info.Writer()), gin.Recovery())
	engine.MaxMultipartMemory = maxUploadSize

	apiGroup := engine.Group("/api/v1")
	apiGroup.POST("/preview", PreviewHandler(previews, defaultFrame))
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{engine: engine}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(port int) error {
	if err := s.engine.SetTrustedProxies(nil); err != nil {
		return err
	}
	address := fmt.Sprintf(":%d", port)
	logger.Info.Printf("Listening on '%s'", address)
	return s.engine.Run(address)
}

// PreviewHandler reads the uploaded "file" and responds with its orientation
// and placement in the requested frame.
func PreviewHandler(previews api.PreviewService, defaultFrame apitype.Size) gin.HandlerFunc {
	return func(c *gin.Context) {
		frame, err := frameFromQuery(c, defaultFrame)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if c.Request.ContentLength > maxRequestSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestSize)

		fileHeader, err := c.FormFile("file")
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
			return
		} else if err != nil {
			logger.Debug.Printf("No file in request: %s", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file is received"})
			return
		}
		if fileHeader.Size > maxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		computed, err := previews.Compute(fileHeader.Filename, data, frame)
		if errors.Is(err, apitype.ErrInvalidDimensions) {
			logger.Warn.Printf("Invalid dimensions in '%s': %s", fileHeader.Filename, err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		} else if err != nil {
			logger.Warn.Printf("Could not compute preview for '%s': %s", fileHeader.Filename, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, &preview.Result{
			Id:        uuid.NewString(),
			Name:      fileHeader.Filename,
			Preview:   computed,
			Transform: computed.Transform(),
		})
	}
}

func frameFromQuery(c *gin.Context, defaultFrame apitype.Size) (apitype.Size, error) {
	width, err := intQuery(c, "frameWidth", defaultFrame.Width())
	if err != nil {
		return apitype.Size{}, err
	}
	height, err := intQuery(c, "frameHeight", defaultFrame.Height())
	if err != nil {
		return apitype.Size{}, err
	}
	return apitype.SizeOf(width, height), nil
}

func intQuery(c *gin.Context, name string, defaultValue int) (int, error) {
	value, ok := c.GetQuery(name)
	if !ok {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'", name, value)
	}
	return parsed, nil
}
