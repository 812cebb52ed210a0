package domain

import (
	"slices"
	"strings"
)

// UserDefineKey identifies a user-configurable build option.
type UserDefineKey string

// Known option keys.
const (
	KeyBindingPhrase            UserDefineKey = "BINDING_PHRASE"
	KeyRegulatoryDomainAU915    UserDefineKey = "REGULATORY_DOMAIN_AU_915"
	KeyRegulatoryDomainEU868    UserDefineKey = "REGULATORY_DOMAIN_EU_868"
	KeyRegulatoryDomainIN866    UserDefineKey = "REGULATORY_DOMAIN_IN_866"
	KeyRegulatoryDomainFCC915   UserDefineKey = "REGULATORY_DOMAIN_FCC_915"
	KeyRegulatoryDomainISM2400  UserDefineKey = "REGULATORY_DOMAIN_ISM_2400"
	KeyRegulatoryDomainEUCE2400 UserDefineKey = "REGULATORY_DOMAIN_EU_CE_2400"
	KeyHomeWifiSSID             UserDefineKey = "HOME_WIFI_SSID"
	KeyHomeWifiPassword         UserDefineKey = "HOME_WIFI_PASSWORD"
	KeyAutoWifiOnInterval       UserDefineKey = "AUTO_WIFI_ON_INTERVAL"
	KeyDisableAllBeeps          UserDefineKey = "DISABLE_ALL_BEEPS"
	KeyJustBeepOnce             UserDefineKey = "JUST_BEEP_ONCE"
	KeyMyStartupMelody          UserDefineKey = "MY_STARTUP_MELODY"
	KeyUnlockHigherPower        UserDefineKey = "UNLOCK_HIGHER_POWER"
	KeyUseR9mmR9miniSBUS        UserDefineKey = "USE_R9MM_R9MINI_SBUS"
	KeyTLMReportIntervalMS      UserDefineKey = "TLM_REPORT_INTERVAL_MS"
	KeyUARTInverted             UserDefineKey = "UART_INVERTED"
	KeyRcvrUARTBaud             UserDefineKey = "RCVR_UART_BAUD"
	KeyRcvrInvertTX             UserDefineKey = "RCVR_INVERT_TX"
	KeyLockOnFirstConnection    UserDefineKey = "LOCK_ON_FIRST_CONNECTION"
)

// OptionType describes how the value of an option is edited.
type OptionType string

const (
	// OptionBoolean options are toggled on or off.
	OptionBoolean OptionType = "Boolean"
	// OptionText options carry a free-form value.
	OptionText OptionType = "Text"
)

// ConfigurableOption is a build option derived for a target.
type ConfigurableOption struct {
	Key       UserDefineKey `json:"key"`
	Type      OptionType    `json:"type"`
	Enabled   bool          `json:"enabled"`
	Value     string        `json:"value,omitempty"`
	Sensitive bool          `json:"sensitive"`
}

type optionDefaults struct {
	typ       OptionType
	enabled   bool
	value     string
	sensitive bool
}

var optionFactory = map[UserDefineKey]optionDefaults{
	KeyBindingPhrase:            {typ: OptionText, sensitive: true},
	KeyRegulatoryDomainAU915:    {typ: OptionBoolean},
	KeyRegulatoryDomainEU868:    {typ: OptionBoolean},
	KeyRegulatoryDomainIN866:    {typ: OptionBoolean},
	KeyRegulatoryDomainFCC915:   {typ: OptionBoolean},
	KeyRegulatoryDomainISM2400:  {typ: OptionBoolean},
	KeyRegulatoryDomainEUCE2400: {typ: OptionBoolean},
	KeyHomeWifiSSID:             {typ: OptionText, sensitive: true},
	KeyHomeWifiPassword:         {typ: OptionText, sensitive: true},
	KeyAutoWifiOnInterval:       {typ: OptionText, value: "20"},
	KeyDisableAllBeeps:          {typ: OptionBoolean},
	KeyJustBeepOnce:             {typ: OptionBoolean},
	KeyMyStartupMelody:          {typ: OptionText},
	KeyUnlockHigherPower:        {typ: OptionBoolean},
	KeyUseR9mmR9miniSBUS:        {typ: OptionBoolean},
	KeyTLMReportIntervalMS:      {typ: OptionText, value: "240LU"},
	KeyUARTInverted:             {typ: OptionBoolean, enabled: true},
	KeyRcvrUARTBaud:             {typ: OptionText, value: "420000"},
	KeyRcvrInvertTX:             {typ: OptionBoolean},
	KeyLockOnFirstConnection:    {typ: OptionBoolean, enabled: true},
}

// NewOption builds the option for key with its default state.
// It panics for a key outside the enumeration.
func NewOption(key UserDefineKey) ConfigurableOption {
	defaults, ok := optionFactory[key]
	if !ok {
		panic("domain: no option defaults for key " + string(key))
	}
	return ConfigurableOption{
		Key:       key,
		Type:      defaults.typ,
		Enabled:   defaults.enabled,
		Value:     defaults.value,
		Sensitive: defaults.sensitive,
	}
}

// optionRule appends keys when match holds. Rules are evaluated independently, in table order.
type optionRule struct {
	name  string
	match func(targetID string, cfg RawDeviceConfig) bool
	keys  []UserDefineKey
}

func targetContains(substr string) func(string, RawDeviceConfig) bool {
	return func(targetID string, _ RawDeviceConfig) bool {
		return strings.Contains(targetID, substr)
	}
}

func platformIn(platforms ...string) func(string, RawDeviceConfig) bool {
	return func(_ string, cfg RawDeviceConfig) bool {
		return slices.Contains(platforms, cfg.Platform)
	}
}

func hasFeature(feature string) func(string, RawDeviceConfig) bool {
	return func(_ string, cfg RawDeviceConfig) bool {
		return cfg.HasFeature(feature)
	}
}

var optionRules = []optionRule{
	{
		name:  "binding phrase",
		match: func(string, RawDeviceConfig) bool { return true },
		keys:  []UserDefineKey{KeyBindingPhrase},
	},
	{
		name:  "2.4 GHz regulatory domains",
		match: targetContains("_2400."),
		keys:  []UserDefineKey{KeyRegulatoryDomainEUCE2400, KeyRegulatoryDomainISM2400},
	},
	{
		name:  "900 MHz regulatory domains",
		match: targetContains("_900."),
		keys: []UserDefineKey{
			KeyRegulatoryDomainAU915,
			KeyRegulatoryDomainEU868,
			KeyRegulatoryDomainFCC915,
			KeyRegulatoryDomainIN866,
		},
	},
	{
		// HOME_WIFI_SSID is emitted twice. Callers must not assume unique keys.
		name:  "wifi",
		match: platformIn("esp32", "esp8285"),
		keys:  []UserDefineKey{KeyHomeWifiSSID, KeyHomeWifiSSID, KeyAutoWifiOnInterval},
	},
	{
		name:  "buzzer",
		match: hasFeature("buzzer"),
		keys:  []UserDefineKey{KeyDisableAllBeeps, KeyJustBeepOnce, KeyMyStartupMelody},
	},
	{
		name:  "higher power",
		match: hasFeature("unlock-higher-power"),
		keys:  []UserDefineKey{KeyUnlockHigherPower},
	},
	{
		name:  "sbus uart",
		match: hasFeature("sbus-uart"),
		keys:  []UserDefineKey{KeyUseR9mmR9miniSBUS},
	},
	{
		name:  "transmitter",
		match: targetContains(".tx_"),
		keys:  []UserDefineKey{KeyTLMReportIntervalMS, KeyUARTInverted},
	},
	{
		name:  "receiver",
		match: targetContains(".rx_"),
		keys:  []UserDefineKey{KeyRcvrUARTBaud, KeyRcvrInvertTX, KeyLockOnFirstConnection},
	},
}

// DeriveOptions returns the options applicable to targetID given its device configuration.
// The result is a fresh slice on every call.
func DeriveOptions(targetID string, cfg RawDeviceConfig) []ConfigurableOption {
	var options []ConfigurableOption
	for _, rule := range optionRules {
		if !rule.match(targetID, cfg) {
			continue
		}
		for _, key := range rule.keys {
			options = append(options, NewOption(key))
		}
	}
	return options
}
