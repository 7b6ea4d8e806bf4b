// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package i18n

// messages is the bilingual catalog for API envelope messages, keyed by
// message id then language.
var messages = map[string]map[string]string{
	"ok": {
		English: "Success.",
		Arabic:  "تمت العملية بنجاح.",
	},
	"logo_fetched": {
		English: "Logo retrieved successfully.",
		Arabic:  "تم جلب الشعار بنجاح.",
	},
	"logos_fetched": {
		English: "Logos retrieved successfully.",
		Arabic:  "تم جلب الشعارات بنجاح.",
	},
	"logo_created": {
		English: "Logo created successfully.",
		Arabic:  "تم إنشاء الشعار بنجاح.",
	},
	"logo_updated": {
		English: "Logo updated successfully.",
		Arabic:  "تم تحديث الشعار بنجاح.",
	},
	"logo_deleted": {
		English: "Logo deleted successfully.",
		Arabic:  "تم حذف الشعار بنجاح.",
	},
	"logo_not_found": {
		English: "Logo not found.",
		Arabic:  "الشعار غير موجود.",
	},
	"invalid_logo_id": {
		English: "Invalid logo identifier.",
		Arabic:  "معرّف الشعار غير صالح.",
	},
	"legacy_not_supported": {
		English: "This logo does not support the legacy format.",
		Arabic:  "هذا الشعار لا يدعم التنسيق القديم.",
	},
	"layer_created": {
		English: "Layer created successfully.",
		Arabic:  "تم إنشاء الطبقة بنجاح.",
	},
	"layer_updated": {
		English: "Layer updated successfully.",
		Arabic:  "تم تحديث الطبقة بنجاح.",
	},
	"layer_deleted": {
		English: "Layer deleted successfully.",
		Arabic:  "تم حذف الطبقة بنجاح.",
	},
	"layer_not_found": {
		English: "Layer not found.",
		Arabic:  "الطبقة غير موجودة.",
	},
	"layers_reordered": {
		English: "Layers reordered successfully.",
		Arabic:  "تم إعادة ترتيب الطبقات بنجاح.",
	},
	"asset_not_found": {
		English: "Asset not found.",
		Arabic:  "المورد غير موجود.",
	},
	"validation_failed": {
		English: "Request validation failed.",
		Arabic:  "فشل التحقق من صحة الطلب.",
	},
	"unauthorized": {
		English: "Authentication required.",
		Arabic:  "يجب تسجيل الدخول.",
	},
	"forbidden": {
		English: "You do not have access to this resource.",
		Arabic:  "ليس لديك صلاحية الوصول إلى هذا المورد.",
	},
	"entitlement_required": {
		English: "This feature requires a Pro subscription.",
		Arabic:  "تتطلب هذه الميزة اشتراك برو.",
	},
	"registered": {
		English: "Account created successfully.",
		Arabic:  "تم إنشاء الحساب بنجاح.",
	},
	"email_taken": {
		English: "An account with this email already exists.",
		Arabic:  "يوجد حساب مسجل بهذا البريد الإلكتروني.",
	},
	"logged_in": {
		English: "Logged in successfully.",
		Arabic:  "تم تسجيل الدخول بنجاح.",
	},
	"invalid_credentials": {
		English: "Invalid email or password.",
		Arabic:  "البريد الإلكتروني أو كلمة المرور غير صحيحة.",
	},
	"totp_required": {
		English: "A two-factor code is required.",
		Arabic:  "مطلوب رمز التحقق بخطوتين.",
	},
	"totp_invalid": {
		English: "Invalid two-factor code.",
		Arabic:  "رمز التحقق بخطوتين غير صحيح.",
	},
	"totp_enabled": {
		English: "Two-factor authentication enabled.",
		Arabic:  "تم تفعيل التحقق بخطوتين.",
	},
	"token_refreshed": {
		English: "Session refreshed successfully.",
		Arabic:  "تم تجديد الجلسة بنجاح.",
	},
	"invalid_refresh_token": {
		English: "Invalid or expired refresh token.",
		Arabic:  "رمز التجديد غير صالح أو منتهي الصلاحية.",
	},
	"otp_sent": {
		English: "A verification code has been sent.",
		Arabic:  "تم إرسال رمز التحقق.",
	},
	"otp_invalid": {
		English: "Invalid or expired verification code.",
		Arabic:  "رمز التحقق غير صالح أو منتهي الصلاحية.",
	},
	"otp_throttled": {
		English: "Too many verification codes requested. Try again later.",
		Arabic:  "تم طلب عدد كبير من رموز التحقق. حاول مرة أخرى لاحقًا.",
	},
	"webhook_invalid": {
		English: "Invalid webhook signature.",
		Arabic:  "توقيع الإشعار غير صالح.",
	},
	"rate_limited": {
		English: "Too many requests. Try again later.",
		Arabic:  "عدد كبير جدًا من الطلبات. حاول مرة أخرى لاحقًا.",
	},
	"internal_error": {
		English: "Something went wrong. Please try again.",
		Arabic:  "حدث خطأ ما. يرجى المحاولة مرة أخرى.",
	},
}

// Message returns the catalog entry for a message id in the given language.
// Falls back to English, then to the id itself so missing entries stay
// visible during development instead of silently disappearing.
func Message(lang, id string) string {
	entry, ok := messages[id]
	if !ok {
		return id
	}
	if v, ok := entry[Normalize(lang)]; ok && v != "" {
		return v
	}
	if v, ok := entry[English]; ok {
		return v
	}
	return id
}
