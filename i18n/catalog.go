package i18n

// catalog holds message templates keyed by language and rule name.
// Placeholders are {param} names from Rule.Params.
var catalog = map[string]map[string]string{
	"en": {
		// string
		"string":      "must be a string",
		"whitespace":  "must contain only whitespace",
		"min":         "must have a minimum length of {min}",
		"max":         "must have a maximum length of {max}",
		"length":      "must have a length of exactly {length}",
		"nonempty":    "must not be empty",
		"regex":       "must match pattern {pattern}",
		"includes":    "must include \"{substring}\"",
		"startsWith":  "must start with \"{prefix}\"",
		"endsWith":    "must end with \"{suffix}\"",
		"lowercase":   "must be lowercase",
		"uppercase":   "must be uppercase",
		"email":       "must be a email",
		"hostname":    "must be a hostname",
		"url":         "must be a url",
		"uuid":        "must be a uuid",
		"ipv4":        "must be a valid IPv4 address",
		"ipv6":        "must be a valid IPv6 address",
		"cidrv4":      "must be a valid IPv4 CIDR",
		"cidrv6":      "must be a valid IPv6 CIDR",
		"isoDate":     "must be a valid ISO date",
		"isoDatetime": "must be a valid ISO datetime",
		"isoDuration": "must be a valid ISO duration",
		"isoTime":     "must be a valid ISO time",
		"jwt":         "must be a valid JWT",
		"mac":         "must be a valid MAC address",
		"cuid":        "must be a valid cuid",
		"cuid2":       "must be a valid cuid2",
		"emoji":       "must be a valid emoji",
		"hash":        "must be a valid hash",
		"httpUrl":     "must be a valid http/https url",
		"nanoid":      "must be a valid nanoid",
		"ulid":        "must be a valid ulid",
		"base64":      "must be valid base64",
		"base64url":   "must be valid base64url",
		"hex":         "must be valid hex",

		// number
		"number":      "must be a number",
		"int":         "must be an integer",
		"float":       "must be a number with a fractional part",
		"safeInteger": "must be a safe integer",
		"safeFloat":   "must be a safe floating point number",
		"int32":       "must be a 32-bit integer",
		"uint":        "must be an unsigned integer",
		"uint32":      "must be an unsigned 32-bit integer",
		"uint16":      "must be an unsigned 16-bit integer",
		"uint8":       "must be an unsigned 8-bit integer",
		"finite":      "must be finite",
		"infinite":    "must be infinite",
		"gt":          "must be greater than {value}",
		"gte":         "must be greater than or equal to {value}",
		"lt":          "must be less than {value}",
		"lte":         "must be less than or equal to {value}",
		"between":     "must be between {min} and {max}",
		"positive":    "must be positive",
		"nonnegative": "must not be negative",
		"negative":    "must be negative",
		"nonpositive": "must not be positive",
		"nonZero":     "must not be zero",
		"multipleOf":  "must be a multiple of {value}",
		"percentage":  "must be a percentage between 0 and 100",

		// boolean
		"boolean":    "must be a boolean",
		"isTrue":     "must be true",
		"isFalse":    "must be false",
		"stringBool": "must be \"true\" or \"false\"",

		// date
		"date":        "must be a valid date",
		"after":       "must be after {date}",
		"before":      "must be before {date}",
		"isSame":      "must be {date}",
		"dateBetween": "must be between {min} and {max}",
		"future":      "must be in the future",
		"past":        "must be in the past",
		"weekend":     "must fall on a weekend",
		"weekday":     "must fall on a weekday",

		// value
		"undefined": "must be undefined",
		"null":      "must be null",
		"nil":       "must be null or undefined",
		"defined":   "must be defined",
		"notNil":    "must not be null or undefined",
		"empty":     "must be empty",
		"notEmpty":  "must not be empty",
		"truthy":    "must be truthy",
		"falsy":     "must be falsy",

		"enum":   "Value must be one of: {values}",
		"union":  "must match at least one union member",
		"refine": "invalid value",
		"array":  "must be array",
	},
	"ja": {
		"string":      "文字列である必要があります",
		"min":         "{min}文字以上である必要があります",
		"max":         "{max}文字以下である必要があります",
		"length":      "{length}文字である必要があります",
		"nonempty":    "空にできません",
		"regex":       "パターン {pattern} に一致する必要があります",
		"includes":    "\"{substring}\" を含む必要があります",
		"startsWith":  "\"{prefix}\" で始まる必要があります",
		"endsWith":    "\"{suffix}\" で終わる必要があります",
		"lowercase":   "小文字である必要があります",
		"uppercase":   "大文字である必要があります",
		"email":       "メールアドレスの形式が不正です",
		"url":         "URLの形式が不正です",
		"uuid":        "UUIDの形式が不正です",
		"number":      "数値である必要があります",
		"int":         "整数である必要があります",
		"gt":          "{value}より大きい必要があります",
		"gte":         "{value}以上である必要があります",
		"lt":          "{value}未満である必要があります",
		"lte":         "{value}以下である必要があります",
		"between":     "{min}から{max}の範囲である必要があります",
		"positive":    "正の数である必要があります",
		"negative":    "負の数である必要があります",
		"multipleOf":  "{value}の倍数である必要があります",
		"boolean":     "真偽値である必要があります",
		"date":        "有効な日付である必要があります",
		"after":       "{date}より後である必要があります",
		"before":      "{date}より前である必要があります",
		"dateBetween": "{min}から{max}の範囲である必要があります",
		"enum":        "次のいずれかである必要があります: {values}",
		"union":       "いずれの候補にも一致しません",
		"refine":      "値が不正です",
		"array":       "配列である必要があります",
	},
}
