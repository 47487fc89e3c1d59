// Package texts holds all user- and admin-facing strings. The product
// speaks Russian; format verbs are filled with fmt.Sprintf.
package texts

// Messages to anonymous senders
const (
	UserWelcome     = "Здравствуйте! Чтобы отправить анонимное сообщение, воспользуйтесь формой на сайте."
	UserBlocked     = "Вы заблокированы и не можете отправлять сообщения."
	UserMessageSent = "Ваше сообщение отправлено. Спасибо!"
	UserInvalidLink = "Ссылка недействительна или уже использована."
	UserTryLater    = "Что-то пошло не так, попробуйте позже."
	// ReplyFromAdmin wraps the admin's reply text
	ReplyFromAdmin = "<b>Ответ от KOSMOS:</b>\n\n%s"
)

// Admin panel texts
const (
	AdminPanel            = "<b>Панель администратора</b>\nВыберите действие:"
	AdminNewMessage       = "Получено новое сообщение."
	AdminNoAccess         = "У вас нет доступа к этой команде."
	AdminNoAccessFunction = "Нет доступа к этой функции."
	AdminNoMessages       = "Сообщений пока нет."
	AdminSelectSender     = "<b>Входящие</b>\nВыберите отправителя:"
	AdminEnterReply       = "Введите текст ответа:"
	AdminReplySent        = "Ответ отправлен."
	AdminSelectBlockType  = "Выберите тип блокировки:"
	AdminEnterBlockHours  = "Введите длительность блокировки в часах:"
	AdminInvalidHours     = "Введите положительное число часов."
	AdminBlockedTemp      = "Пользователь заблокирован на %d ч."
	AdminBlockedPerm      = "Пользователь заблокирован навсегда."
	AdminUnblocked        = "Пользователь разблокирован."
	AdminConfirmDelete    = "Удалить сообщение? Это действие нельзя отменить."
	AdminMessageDeleted   = "Сообщение удалено."
	AdminBlacklistEmpty   = "Чёрный список пуст."
	AdminBlacklistOpen    = "Чёрный список:"
	AdminActionCancelled  = "Действие отменено."
	AdminActionFailed     = "Не удалось выполнить действие, попробуйте ещё раз."
	AdminNoSenderMessages = "Сообщений не найдено."
	AdminDigest           = "📬 Непрочитанных сообщений: %d"
)

// Message view texts
const (
	UnreadBadge  = " (%d новых)"
	BlockedBadge = " 🚫"
	StatusNew    = "🆕 Новое"
	StatusAnswer = "✅ Отвечено"
	// MessageHeader: name, status, date, page, total, text
	MessageHeader = "<b>%s</b> — %s\n%s\nСообщение %d из %d\n\n%s"
	BlockedPerm   = "🚫 Заблокирован навсегда\n\n"
	BlockedTemp   = "🚫 Заблокирован ещё на %d ч.\n\n"
)

// Blacklist view texts
const (
	BlacklistStatusPerm    = "навсегда"
	BlacklistStatusTemp    = "ещё %d ч."
	BlacklistStatusExpired = "истекла"
	// BlacklistHeader: sender id, status, date, page, total
	BlacklistHeader = "<b>Чёрный список</b>\nID: %d\nБлокировка: %s\nДата: %s\nЗапись %d из %d"
)

// Inline keyboard labels
const (
	BtnViewMessages   = "📨 Сообщения"
	BtnBlacklist      = "🚫 Чёрный список"
	BtnDismissPanel   = "❌ Скрыть панель"
	BtnBack           = "⬅️ Назад"
	BtnPrev           = "⬅️"
	BtnNext           = "➡️"
	BtnReply          = "💬 Ответить"
	BtnBlock          = "🚫 Заблокировать"
	BtnUnblock        = "✅ Разблокировать"
	BtnBlockTemp      = "⏱ Временно"
	BtnBlockPerm      = "🚫 Навсегда"
	BtnDeleteMsg      = "🗑 Удалить"
	BtnConfirmDelete  = "🗑 Да, удалить"
	BtnCancel         = "Отмена"
	BtnBackToMessages = "⬅️ К сообщениям"
	BtnBackToSenders  = "⬅️ К отправителям"
	BtnOpenBlacklist  = "Открыть чёрный список"
)

// Web API texts
const (
	WebEmptyMessage = "Сообщение не может быть пустым"
	WebBadRequest   = "Некорректный формат запроса"
	WebSubmitted    = "Сообщение успешно обработано. Используйте ссылку для отправки в Telegram."
)
