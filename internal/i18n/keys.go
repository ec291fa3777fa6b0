// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthOTPSent            = "auth.otp_sent"
	KeyAuthOTPInvalid         = "auth.otp_invalid"
	KeyAuthAccountSuspended   = "auth.account_suspended"

	// Users
	KeyUserNotFound       = "user.not_found"
	KeyUserProfileUpdated = "user.profile_updated"

	// Favorites
	KeyFavoriteAdded          = "favorite.added"
	KeyFavoriteRemoved        = "favorite.removed"
	KeyFavoriteExists         = "favorite.already_exists"
	KeyFavoriteAlreadyDeleted = "favorite.already_deleted"
	KeyFavoriteNotFound       = "favorite.not_found"

	// Catalog
	KeyItemNotFound        = "item.not_found"
	KeyProductCreated      = "product.created"
	KeyProductUpdated      = "product.updated"
	KeyProductDeleted      = "product.deleted"
	KeyProductNotFound     = "product.not_found"
	KeyProductOutOfStock   = "product.out_of_stock"
	KeyServiceCreated      = "service.created"
	KeyServiceNotFound     = "service.not_found"
	KeyCategoryCreated     = "category.created"
	KeyCategoryExists      = "category.already_exists"
	KeyCategoryNotFound    = "category.not_found"
	KeyBrandCreated        = "brand.created"
	KeyBrandExists         = "brand.already_exists"
	KeyBrandDeleted        = "brand.deleted"
	KeyBrandAlreadyDeleted = "brand.already_deleted"
	KeyBrandNotFound       = "brand.not_found"

	// Cart
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemUpdated  = "cart.item_updated"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartNotFound     = "cart.not_found"
	KeyCartItemNotFound = "cart.item_not_found"
	KeyCartEmpty        = "cart.empty"
	KeyCartCheckedOut   = "cart.checked_out"
	KeyAddToCartFailed  = "cart.add_failed"

	// Orders
	KeyOrderCreated    = "order.created"
	KeyOrderNotFound   = "order.not_found"
	KeyOrderCancelled  = "order.cancelled"
	KeyOrderDelivered  = "order.delivered"
	KeyOrderShipped    = "order.shipped"
	KeyOrderNotOwner   = "order.not_owner"
	KeyOrderFinalState = "order.final_state"
	KeyCheckoutFailed  = "order.checkout_failed"

	// Payments
	KeyPaymentCreated       = "payment.created"
	KeyPaymentSuccess       = "payment.success"
	KeyPaymentFailed        = "payment.failed"
	KeyPaymentNotFound      = "payment.not_found"
	KeyPaymentExists        = "payment.already_exists"
	KeyPaymentRefunded      = "payment.refunded"
	KeyPaymentMethodInvalid = "payment.method_invalid"
	KeyPaymentNotPayable    = "payment.order_not_payable"

	// Communication
	KeyCommentCreated       = "comment.created"
	KeyCommentUpdated       = "comment.updated"
	KeyCommentDeleted       = "comment.deleted"
	KeyCommentNotFound      = "comment.not_found"
	KeyCommentNotAuthor     = "comment.not_author"
	KeyReviewCreated        = "review.created"
	KeyReviewExists         = "review.already_exists"
	KeyReviewInvalidRating  = "review.invalid_rating"
	KeyConversationStarted  = "conversation.started"
	KeyConversationNotFound = "conversation.not_found"
	KeyMessageSent          = "message.sent"
	KeyNotParticipant       = "conversation.not_participant"

	// Validation
	KeyValidationInvalid = "validation.invalid"
	KeyValidationFailed  = "validation.failed"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"

	// Generic failure
	KeyInternalError = "internal_error"
)
