package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	app "tile-analyzer/internal/application"
	"tile-analyzer/internal/domain/entity"
	"tile-analyzer/internal/infrastructure/report"
)

const (
	msgStart = `👋 Привет! Я бот для проверки разметки на плитке.

📸 Отправьте мне фото плитки с нарисованной линией, и я измерю,
насколько плотно линия покрывает эталонную траекторию.

📋 Команды:
/check — начать проверку плитки
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте команду /check
2️⃣ Сфотографируйте плитку целиком, строго сверху
3️⃣ Бот измерит плотность покрытия по каждому сегменту
   и вынесет вердикт pass/fail

💡 Рекомендации:
• Снимайте при ровном освещении, без бликов
• Плитка должна занимать большую часть кадра
• Привязка камеры к плитке задаётся оператором при запуске

📋 Команды:
/check — начать проверку
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото плитки с нарисованной линией."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото плитки для проверки разметки."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Измеряю покрытие линии..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
)

// Bot представляет Telegram-бота
type Bot struct {
	api        *tgbotapi.BotAPI
	users      *app.UserService
	inspection *app.InspectionService
	params     app.AnalysisParams
	log        zerolog.Logger
}

// NewBot создаёт нового бота с заданной геометрией проверки
func NewBot(token string, users *app.UserService, inspection *app.InspectionService, params app.AnalysisParams, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", api.Self.UserName).Msg("authorized")

	return &Bot{
		api:        api,
		users:      users,
		inspection: inspection,
		params:     params,
		log:        log,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", msg.From.ID).Msg("get user")
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		b.users.BeginCheck(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "cancel":
		b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото плитки
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	b.users.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		b.log.Error().Err(err).Msg("download photo")
		b.finishWithError(ctx, msg.Chat.ID, user)
		return
	}

	frame, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		b.log.Error().Err(err).Msg("decode photo")
		b.finishWithError(ctx, msg.Chat.ID, user)
		return
	}

	out, err := b.inspection.AnalyzeFrame(ctx, frame, b.params)
	if err != nil {
		b.log.Error().Err(err).Msg("analyze frame")
		b.finishWithError(ctx, msg.Chat.ID, user)
		return
	}

	b.sendMessage(msg.Chat.ID, report.Render(out.Threshold, out.Report))
	if len(out.Annotated) > 0 {
		b.sendPhoto(msg.Chat.ID, out.Annotated)
	}

	b.users.Cancel(ctx, user.ID, user.ChatID)
}

// finishWithError сообщает об ошибке и возвращает пользователя в меню
func (b *Bot) finishWithError(ctx context.Context, chatID int64, user *entity.User) {
	b.sendMessage(chatID, msgProcessingError)
	b.users.Cancel(ctx, user.ID, user.ChatID)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Msg("send message")
	}
}

// sendPhoto отправляет изображение с отрисованной полилинией
func (b *Bot) sendPhoto(chatID int64, jpegData []byte) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "annotated.jpg", Bytes: jpegData})
	if _, err := b.api.Send(photo); err != nil {
		b.log.Error().Err(err).Msg("send photo")
	}
}
