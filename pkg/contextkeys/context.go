package contextkeys

// Кастомный тип ключа, чтобы избежать коллизий в context
type contextKey string

// DBContextKey - ключ, по которому в context хранится *gorm.DB (пул или транзакция)
const DBContextKey = contextKey("db")

// PrincipalIDKey - ключ gin.Context, под которым middleware сохраняет id принципала
const PrincipalIDKey = "principalID"

// PrincipalRoleKey - ключ gin.Context с ролью принципала
const PrincipalRoleKey = "principalRole"

// PrincipalVariantKey - ключ gin.Context с вариантом принципала (user/employer)
const PrincipalVariantKey = "principalVariant"
