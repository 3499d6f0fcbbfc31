package view

import (
    "strings"

    "golang.org/x/text/language"
    "golang.org/x/text/message"
    "golang.org/x/text/message/catalog"

    "github.com/iliyamo/hotel-booking-web/internal/adminbooking"
    "github.com/iliyamo/hotel-booking-web/internal/apperror"
    "github.com/iliyamo/hotel-booking-web/internal/booking"
)

// Supported lists the page languages; the first one is the fallback.
var Supported = []language.Tag{language.English, language.Vietnamese}

// English strings are the catalogue keys, so only other languages need
// entries here.
var vietnamese = map[string]string{
    "Hotels":                     "Khách sạn",
    "Find my booking":            "Tra cứu đặt phòng",
    "Profile":                    "Hồ sơ",
    "Login":                      "Đăng nhập",
    "Logout":                     "Đăng xuất",
    "Register":                   "Đăng ký",
    "Bookings":                   "Đặt phòng",
    "Rooms":                      "Phòng",
    "Amenities":                  "Tiện ích",
    "Accounts":                   "Tài khoản",
    "Search":                     "Tìm kiếm",
    "Clear":                      "Xóa tìm kiếm",
    "Confirm":                    "Xác nhận",
    "Cancel":                     "Hủy",
    "Save":                       "Lưu",
    "Delete":                     "Xóa",
    "Edit":                       "Sửa",
    "Book now":                   "Đặt ngay",
    "View reason":                "Xem lý do",
    "per night":                  "mỗi đêm",
    "nights":                     "đêm",
    "Total":                      "Tổng cộng",
    "Confirmation code":          "Mã xác nhận",
    "Check-in":                   "Nhận phòng",
    "Check-out":                  "Trả phòng",
    "Adults":                     "Người lớn",
    "Children":                   "Trẻ em",
    "Room quantity":              "Số lượng phòng",
    "Special request":            "Yêu cầu đặc biệt",
    "Status":                     "Trạng thái",
    "Room number":                "Số phòng",
    "Cancellation reason":        "Lý do hủy",
    "Your booking is confirmed":  "Đặt phòng thành công",
    "No hotels found":            "Không tìm thấy khách sạn",
    "BOOKED":                     "Đã đặt",
    "CHECKED_IN":                 "Đã nhận phòng",
    "CHECKED_OUT":                "Đã trả phòng",
    "CANCELLED":                  "Đã hủy",
    "Locked":                     "Đã khóa",
    "Active":                     "Hoạt động",
    "Lock":                       "Khóa",
    "Unlock":                     "Mở khóa",

    apperror.GenericMessage:            "Đã xảy ra lỗi, vui lòng thử lại",
    apperror.MsgBusy:                   "Yêu cầu đang được xử lý, vui lòng đợi",
    booking.MsgCheckInRequired:         "Vui lòng chọn ngày nhận phòng",
    booking.MsgCheckOutRequired:        "Vui lòng chọn ngày trả phòng",
    booking.MsgInvalidDate:             "Ngày phải theo định dạng YYYY-MM-DD",
    booking.MsgCheckInPast:             "Ngày nhận phòng không được ở quá khứ",
    booking.MsgCheckOutOrder:           "Ngày trả phòng phải sau ngày nhận phòng",
    booking.MsgAdultsMin:               "Cần ít nhất một người lớn",
    booking.MsgChildrenMin:             "Số trẻ em không được âm",
    booking.MsgInvalidNumber:           "Số khách và số phòng phải là số nguyên",
    booking.MsgCapacityExceeded:        "Số khách vượt quá sức chứa của phòng",
    booking.MsgQuantityMin:             "Phải đặt ít nhất một phòng",
    booking.MsgQuantityExceeded:        "Không đủ phòng trống cho số lượng yêu cầu",
    adminbooking.MsgTerminal:           "Đặt phòng đã kết thúc, không thể đổi trạng thái",
    adminbooking.MsgInvalidTransition:  "Không thể chuyển sang trạng thái này",
    adminbooking.MsgUnknownStatus:      "Trạng thái không hợp lệ",
    adminbooking.MsgReasonRequired:     "Vui lòng nhập lý do hủy",
    adminbooking.MsgRoomNumberRequired: "Vui lòng nhập số phòng",
    adminbooking.MsgNoPending:          "Không có thay đổi nào đang chờ xác nhận",
    adminbooking.MsgBookingMissing:     "Không tìm thấy đặt phòng trong danh sách",
    adminbooking.MsgNotFound:           "Không có đặt phòng nào khớp với mã xác nhận này",
}

// Translator resolves the page language and formats localised strings and
// numbers through golang.org/x/text.
type Translator struct {
    cat      *catalog.Builder
    matcher  language.Matcher
    fallback language.Tag
}

// NewTranslator builds the catalogue. defaultLocale is used when neither
// the language cookie nor Accept-Language match.
func NewTranslator(defaultLocale string) *Translator {
    b := catalog.NewBuilder(catalog.Fallback(language.English))
    for key, msg := range vietnamese {
        _ = b.SetString(language.Vietnamese, key, msg)
    }
    fallback := language.English
    if tag, err := language.Parse(defaultLocale); err == nil {
        if _, i, conf := language.NewMatcher(Supported).Match(tag); conf != language.No {
            fallback = Supported[i]
        }
    }
    return &Translator{cat: b, matcher: language.NewMatcher(Supported), fallback: fallback}
}

// Match picks a supported language from preferences in priority order,
// each either a tag ("vi") or an Accept-Language header value.
func (t *Translator) Match(prefs ...string) language.Tag {
    var nonEmpty []string
    for _, p := range prefs {
        if strings.TrimSpace(p) != "" {
            nonEmpty = append(nonEmpty, p)
        }
    }
    if len(nonEmpty) == 0 {
        return t.fallback
    }
    tag, _ := language.MatchStrings(t.matcher, nonEmpty...)
    base, _ := tag.Base()
    for _, s := range Supported {
        if b, _ := s.Base(); b == base {
            return s
        }
    }
    return t.fallback
}

// Printer returns a message printer for tag.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
    return message.NewPrinter(tag, message.Catalog(t.cat))
}

// Translate looks key up and formats args into it. Keys containing a verb
// are only treated as formats when args are given, so server messages with
// a stray '%' pass through unchanged.
func Translate(p *message.Printer, key string, args ...interface{}) string {
    if len(args) == 0 && strings.Contains(key, "%") {
        return key
    }
    return p.Sprintf(key, args...)
}

// Money formats an amount with locale digit grouping.
func Money(p *message.Printer, amount int64) string {
    return p.Sprintf("%d", amount) + " VND"
}
