package repository

import "context"

// LLMRepository - интерфейс клиента внешнего текстового сервиса.
// Одна попытка на запрос, без повторов: любая ошибка означает fallback
// на эвристическую стратегию.
type LLMRepository interface {
	// Complete отправляет prompt и возвращает текст ответа модели
	Complete(ctx context.Context, prompt string) (string, error)
	// Name возвращает человекочитаемое имя провайдера/модели
	Name() string
}
