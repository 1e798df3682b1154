package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"tile-analyzer/config"
	telegram "tile-analyzer/internal/api"
	app "tile-analyzer/internal/application"
	"tile-analyzer/internal/container"
	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/domain/port"
	"tile-analyzer/internal/infrastructure/camera"
	"tile-analyzer/internal/infrastructure/report"
	"tile-analyzer/internal/infrastructure/storage"
	"tile-analyzer/internal/infrastructure/vision"
)

func main() {
	origin := flag.String("origin", "120,2340", "Bottom-left tile corner in pixels (x,y).")
	tileWidthMM := flag.Float64("tile-width-mm", 120.0, "Measured tile width in millimetres.")
	tileWidthPX := flag.Float64("tile-width-px", 1485.0, "Measured tile width in pixels taken from the captured frame.")
	pointsMM := flag.String("points-mm", "[(0, 0), (10, 5), (20, 10)]", "Reference polyline points in millimetres as a JSON list.")
	minDensity := flag.Float64("min-density", app.DefaultMinDensity, "Minimum acceptable density in pixels per millimetre for each segment.")
	jsonOutput := flag.String("json-output", "", "Optional path to store the analysis results as JSON.")
	imagePath := flag.String("image", "", "Analyze a stored image instead of capturing from the camera.")
	botMode := flag.Bool("bot", false, "Run the Telegram bot instead of a single analysis.")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	originPX, err := parseOrigin(*origin)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse origin")
	}

	points, err := parsePoints(*pointsMM)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse points")
	}

	params := app.AnalysisParams{
		OriginPX:    originPX,
		TileWidthMM: *tileWidthMM,
		TileWidthPX: *tileWidthPX,
		PointsMM:    points,
		MinDensity:  *minDensity,
	}

	userRepo := storage.NewMemoryUserRepository()
	binarizer := vision.NewMedianBinarizer()
	annotator := vision.NewGoCVAnnotator()
	c := container.New(userRepo, binarizer, annotator)

	if *botMode {
		if cfg.TelegramToken == "" {
			logger.Fatal().Msg("TELEGRAM_TOKEN is required")
		}

		bot, err := telegram.NewBot(cfg.TelegramToken, c.UserService, c.InspectionService, params, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("create bot")
		}

		logger.Info().Msg("bot is running")
		if err := bot.Run(); err != nil {
			logger.Fatal().Err(err).Msg("bot stopped")
		}
		return
	}

	var source port.FrameSource
	if *imagePath != "" {
		source = camera.NewFileSource(*imagePath)
	} else {
		source = camera.New(cfg.CameraIndex, cfg.CameraWidth, cfg.CameraHeight)
	}
	defer source.Close()

	out, err := c.InspectionService.CaptureAndAnalyze(context.Background(), source, params)
	if err != nil {
		logger.Fatal().Err(err).Msg("analysis failed")
	}

	fmt.Println(report.Render(out.Threshold, out.Report))

	if *jsonOutput != "" {
		doc := report.NewDocument(out, originPX)
		if err := report.WriteJSON(*jsonOutput, doc); err != nil {
			logger.Fatal().Err(err).Msg("save report")
		}
		logger.Info().Str("path", *jsonOutput).Msg("saved detailed report")
	}
}

// parseOrigin разбирает координаты вида "x,y".
func parseOrigin(text string) (entity.PointPX, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return entity.PointPX{}, fmt.Errorf("origin must be formatted as 'x,y', got %q", text)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return entity.PointPX{}, fmt.Errorf("origin x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return entity.PointPX{}, fmt.Errorf("origin y: %w", err)
	}

	return entity.PointPX{X: x, Y: y}, nil
}

// parsePoints разбирает список точек в миллиметрах. Принимается JSON-список
// пар, круглые скобки в стиле Python тоже допускаются.
func parsePoints(text string) ([]entity.PointMM, error) {
	normalized := strings.NewReplacer("(", "[", ")", "]").Replace(text)

	var raw [][]float64
	if err := json.Unmarshal([]byte(normalized), &raw); err != nil {
		return nil, fmt.Errorf("expected a list of (x, y) pairs, got %q: %w", text, err)
	}

	points := make([]entity.PointMM, 0, len(raw))
	for _, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("invalid point %v: expected exactly two coordinates", pair)
		}
		points = append(points, entity.PointMM{X: pair[0], Y: pair[1]})
	}
	return points, nil
}
