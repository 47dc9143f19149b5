package hw

import "sigmadsp/hw/hwio"

// Addresses of the registers the device logic refers to by name. Everything
// else in the table below is plain storage, kept only for its reset value.
const (
	RegPLLLock    uint16 = 0xF004
	RegPageSelect uint16 = 0xF050
	RegBackupCtrl uint16 = 0xF051
	RegCoreStatus uint16 = 0xF060
	RegStartPulse uint16 = 0xF401
	RegSoftReset  uint16 = 0xF430
)

// NumRegs is the number of declared control registers.
var NumRegs = len(regDefs)

// Control register map. The table is the single authority for names, reset
// values and access modes; the simulator never interprets any of these
// values, except for the two Effect-tagged registers.
var regDefs = [...]RegDef{
	{Addr: 0xF000, Name: "PLL_CTRL0", Reset: 0x0060},
	{Addr: 0xF001, Name: "PLL_CTRL1", Reset: 0x0002},
	{Addr: 0xF002, Name: "PLL_CLK_SRC"},
	{Addr: 0xF003, Name: "PLL_ENABLE"},
	{Addr: 0xF004, Name: "PLL_LOCK", Reset: 0x0001, Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF005, Name: "MCLK_OUT"},
	{Addr: 0xF006, Name: "PLL_WATCHDOG"},
	{Addr: 0xF010, Name: "CLK_GEN1_M", Reset: 0x0006},
	{Addr: 0xF011, Name: "CLK_GEN1_N", Reset: 0x0001},
	{Addr: 0xF012, Name: "CLK_GEN2_M", Reset: 0x0009},
	{Addr: 0xF013, Name: "CLK_GEN2_N", Reset: 0x0001},
	{Addr: 0xF014, Name: "CLK_GEN3_M"},
	{Addr: 0xF015, Name: "CLK_GEN3_N"},
	{Addr: 0xF020, Name: "POWER_ENABLE0"},
	{Addr: 0xF021, Name: "POWER_ENABLE1"},
	{Addr: 0xF030, Name: "ADC_CTRL0"},
	{Addr: 0xF031, Name: "ADC_CTRL1"},
	{Addr: 0xF032, Name: "ADC_CTRL2"},
	{Addr: 0xF033, Name: "ADC_CTRL3"},
	{Addr: 0xF040, Name: "DAC_CTRL0"},
	{Addr: 0xF041, Name: "DAC_CTRL1"},
	{Addr: 0xF042, Name: "DAC_CTRL2"},
	{Addr: 0xF043, Name: "DAC_CTRL3"},
	{Addr: 0xF050, Name: "PAGE_SELECT", Effect: EffPageSelect},
	{Addr: 0xF051, Name: "BACKUP_CTRL", Effect: EffBackupDomain},
	{Addr: 0xF052, Name: "BACKUP_STATUS", Reset: 0x0001, Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF060, Name: "CORE_STATUS", Reset: 0x0001, Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF100, Name: "ASRC_INPUT0"},
	{Addr: 0xF101, Name: "ASRC_INPUT1"},
	{Addr: 0xF102, Name: "ASRC_INPUT2"},
	{Addr: 0xF103, Name: "ASRC_INPUT3"},
	{Addr: 0xF104, Name: "ASRC_INPUT4"},
	{Addr: 0xF105, Name: "ASRC_INPUT5"},
	{Addr: 0xF106, Name: "ASRC_INPUT6"},
	{Addr: 0xF107, Name: "ASRC_INPUT7"},
	{Addr: 0xF108, Name: "ASRC_OUT_RATE0"},
	{Addr: 0xF109, Name: "ASRC_OUT_RATE1"},
	{Addr: 0xF10A, Name: "ASRC_OUT_RATE2"},
	{Addr: 0xF10B, Name: "ASRC_OUT_RATE3"},
	{Addr: 0xF10C, Name: "ASRC_OUT_RATE4"},
	{Addr: 0xF10D, Name: "ASRC_OUT_RATE5"},
	{Addr: 0xF10E, Name: "ASRC_OUT_RATE6"},
	{Addr: 0xF10F, Name: "ASRC_OUT_RATE7"},
	{Addr: 0xF140, Name: "SOUT_SOURCE0"},
	{Addr: 0xF141, Name: "SOUT_SOURCE1"},
	{Addr: 0xF142, Name: "SOUT_SOURCE2"},
	{Addr: 0xF143, Name: "SOUT_SOURCE3"},
	{Addr: 0xF144, Name: "SOUT_SOURCE4"},
	{Addr: 0xF145, Name: "SOUT_SOURCE5"},
	{Addr: 0xF146, Name: "SOUT_SOURCE6"},
	{Addr: 0xF147, Name: "SOUT_SOURCE7"},
	{Addr: 0xF148, Name: "SOUT_SOURCE8"},
	{Addr: 0xF149, Name: "SOUT_SOURCE9"},
	{Addr: 0xF14A, Name: "SOUT_SOURCE10"},
	{Addr: 0xF14B, Name: "SOUT_SOURCE11"},
	{Addr: 0xF14C, Name: "SOUT_SOURCE12"},
	{Addr: 0xF14D, Name: "SOUT_SOURCE13"},
	{Addr: 0xF14E, Name: "SOUT_SOURCE14"},
	{Addr: 0xF14F, Name: "SOUT_SOURCE15"},
	{Addr: 0xF150, Name: "SOUT_SOURCE16"},
	{Addr: 0xF151, Name: "SOUT_SOURCE17"},
	{Addr: 0xF152, Name: "SOUT_SOURCE18"},
	{Addr: 0xF153, Name: "SOUT_SOURCE19"},
	{Addr: 0xF154, Name: "SOUT_SOURCE20"},
	{Addr: 0xF155, Name: "SOUT_SOURCE21"},
	{Addr: 0xF156, Name: "SOUT_SOURCE22"},
	{Addr: 0xF157, Name: "SOUT_SOURCE23"},
	{Addr: 0xF160, Name: "SPDIF_RX0"},
	{Addr: 0xF161, Name: "SPDIF_RX1"},
	{Addr: 0xF162, Name: "SPDIF_RX2"},
	{Addr: 0xF163, Name: "SPDIF_RX3"},
	{Addr: 0xF164, Name: "SPDIF_RX4"},
	{Addr: 0xF165, Name: "SPDIF_RX5"},
	{Addr: 0xF166, Name: "SPDIF_RX6"},
	{Addr: 0xF167, Name: "SPDIF_RX7"},
	{Addr: 0xF168, Name: "SPDIF_RX8"},
	{Addr: 0xF169, Name: "SPDIF_RX9"},
	{Addr: 0xF16A, Name: "SPDIF_RX10"},
	{Addr: 0xF16B, Name: "SPDIF_RX11"},
	{Addr: 0xF16C, Name: "SPDIF_RX12"},
	{Addr: 0xF16D, Name: "SPDIF_RX13"},
	{Addr: 0xF16E, Name: "SPDIF_RX14"},
	{Addr: 0xF16F, Name: "SPDIF_RX15"},
	{Addr: 0xF180, Name: "SERIAL_BYTE_0_0", Reset: 0x9000},
	{Addr: 0xF181, Name: "SERIAL_BYTE_0_1"},
	{Addr: 0xF182, Name: "SERIAL_BYTE_0_2"},
	{Addr: 0xF183, Name: "SERIAL_BYTE_0_3"},
	{Addr: 0xF184, Name: "SERIAL_BYTE_0_4"},
	{Addr: 0xF185, Name: "SERIAL_BYTE_0_5"},
	{Addr: 0xF186, Name: "SERIAL_BYTE_0_6"},
	{Addr: 0xF187, Name: "SERIAL_BYTE_0_7"},
	{Addr: 0xF188, Name: "SERIAL_BYTE_1_0", Reset: 0x9000},
	{Addr: 0xF189, Name: "SERIAL_BYTE_1_1"},
	{Addr: 0xF18A, Name: "SERIAL_BYTE_1_2"},
	{Addr: 0xF18B, Name: "SERIAL_BYTE_1_3"},
	{Addr: 0xF18C, Name: "SERIAL_BYTE_1_4"},
	{Addr: 0xF18D, Name: "SERIAL_BYTE_1_5"},
	{Addr: 0xF18E, Name: "SERIAL_BYTE_1_6"},
	{Addr: 0xF18F, Name: "SERIAL_BYTE_1_7"},
	{Addr: 0xF190, Name: "SERIAL_BYTE_2_0", Reset: 0x9000},
	{Addr: 0xF191, Name: "SERIAL_BYTE_2_1"},
	{Addr: 0xF192, Name: "SERIAL_BYTE_2_2"},
	{Addr: 0xF193, Name: "SERIAL_BYTE_2_3"},
	{Addr: 0xF194, Name: "SERIAL_BYTE_2_4"},
	{Addr: 0xF195, Name: "SERIAL_BYTE_2_5"},
	{Addr: 0xF196, Name: "SERIAL_BYTE_2_6"},
	{Addr: 0xF197, Name: "SERIAL_BYTE_2_7"},
	{Addr: 0xF198, Name: "SERIAL_BYTE_3_0", Reset: 0x9000},
	{Addr: 0xF199, Name: "SERIAL_BYTE_3_1"},
	{Addr: 0xF19A, Name: "SERIAL_BYTE_3_2"},
	{Addr: 0xF19B, Name: "SERIAL_BYTE_3_3"},
	{Addr: 0xF19C, Name: "SERIAL_BYTE_3_4"},
	{Addr: 0xF19D, Name: "SERIAL_BYTE_3_5"},
	{Addr: 0xF19E, Name: "SERIAL_BYTE_3_6"},
	{Addr: 0xF19F, Name: "SERIAL_BYTE_3_7"},
	{Addr: 0xF1A0, Name: "SERIAL_BYTE_4_0", Reset: 0x9000},
	{Addr: 0xF1A1, Name: "SERIAL_BYTE_4_1"},
	{Addr: 0xF1A2, Name: "SERIAL_BYTE_4_2"},
	{Addr: 0xF1A3, Name: "SERIAL_BYTE_4_3"},
	{Addr: 0xF1A4, Name: "SERIAL_BYTE_4_4"},
	{Addr: 0xF1A5, Name: "SERIAL_BYTE_4_5"},
	{Addr: 0xF1A6, Name: "SERIAL_BYTE_4_6"},
	{Addr: 0xF1A7, Name: "SERIAL_BYTE_4_7"},
	{Addr: 0xF1A8, Name: "SERIAL_BYTE_5_0", Reset: 0x9000},
	{Addr: 0xF1A9, Name: "SERIAL_BYTE_5_1"},
	{Addr: 0xF1AA, Name: "SERIAL_BYTE_5_2"},
	{Addr: 0xF1AB, Name: "SERIAL_BYTE_5_3"},
	{Addr: 0xF1AC, Name: "SERIAL_BYTE_5_4"},
	{Addr: 0xF1AD, Name: "SERIAL_BYTE_5_5"},
	{Addr: 0xF1AE, Name: "SERIAL_BYTE_5_6"},
	{Addr: 0xF1AF, Name: "SERIAL_BYTE_5_7"},
	{Addr: 0xF1B0, Name: "SERIAL_BYTE_6_0", Reset: 0x9000},
	{Addr: 0xF1B1, Name: "SERIAL_BYTE_6_1"},
	{Addr: 0xF1B2, Name: "SERIAL_BYTE_6_2"},
	{Addr: 0xF1B3, Name: "SERIAL_BYTE_6_3"},
	{Addr: 0xF1B4, Name: "SERIAL_BYTE_6_4"},
	{Addr: 0xF1B5, Name: "SERIAL_BYTE_6_5"},
	{Addr: 0xF1B6, Name: "SERIAL_BYTE_6_6"},
	{Addr: 0xF1B7, Name: "SERIAL_BYTE_6_7"},
	{Addr: 0xF1B8, Name: "SERIAL_BYTE_7_0", Reset: 0x9000},
	{Addr: 0xF1B9, Name: "SERIAL_BYTE_7_1"},
	{Addr: 0xF1BA, Name: "SERIAL_BYTE_7_2"},
	{Addr: 0xF1BB, Name: "SERIAL_BYTE_7_3"},
	{Addr: 0xF1BC, Name: "SERIAL_BYTE_7_4"},
	{Addr: 0xF1BD, Name: "SERIAL_BYTE_7_5"},
	{Addr: 0xF1BE, Name: "SERIAL_BYTE_7_6"},
	{Addr: 0xF1BF, Name: "SERIAL_BYTE_7_7"},
	{Addr: 0xF200, Name: "FTDM_IN0"},
	{Addr: 0xF201, Name: "FTDM_IN1"},
	{Addr: 0xF202, Name: "FTDM_IN2"},
	{Addr: 0xF203, Name: "FTDM_IN3"},
	{Addr: 0xF204, Name: "FTDM_IN4"},
	{Addr: 0xF205, Name: "FTDM_IN5"},
	{Addr: 0xF206, Name: "FTDM_IN6"},
	{Addr: 0xF207, Name: "FTDM_IN7"},
	{Addr: 0xF208, Name: "FTDM_IN8"},
	{Addr: 0xF209, Name: "FTDM_IN9"},
	{Addr: 0xF20A, Name: "FTDM_IN10"},
	{Addr: 0xF20B, Name: "FTDM_IN11"},
	{Addr: 0xF20C, Name: "FTDM_IN12"},
	{Addr: 0xF20D, Name: "FTDM_IN13"},
	{Addr: 0xF20E, Name: "FTDM_IN14"},
	{Addr: 0xF20F, Name: "FTDM_IN15"},
	{Addr: 0xF210, Name: "FTDM_IN16"},
	{Addr: 0xF211, Name: "FTDM_IN17"},
	{Addr: 0xF212, Name: "FTDM_IN18"},
	{Addr: 0xF213, Name: "FTDM_IN19"},
	{Addr: 0xF214, Name: "FTDM_IN20"},
	{Addr: 0xF215, Name: "FTDM_IN21"},
	{Addr: 0xF216, Name: "FTDM_IN22"},
	{Addr: 0xF217, Name: "FTDM_IN23"},
	{Addr: 0xF218, Name: "FTDM_IN24"},
	{Addr: 0xF219, Name: "FTDM_IN25"},
	{Addr: 0xF21A, Name: "FTDM_IN26"},
	{Addr: 0xF21B, Name: "FTDM_IN27"},
	{Addr: 0xF21C, Name: "FTDM_IN28"},
	{Addr: 0xF21D, Name: "FTDM_IN29"},
	{Addr: 0xF21E, Name: "FTDM_IN30"},
	{Addr: 0xF21F, Name: "FTDM_IN31"},
	{Addr: 0xF220, Name: "FTDM_IN32"},
	{Addr: 0xF221, Name: "FTDM_IN33"},
	{Addr: 0xF222, Name: "FTDM_IN34"},
	{Addr: 0xF223, Name: "FTDM_IN35"},
	{Addr: 0xF224, Name: "FTDM_IN36"},
	{Addr: 0xF225, Name: "FTDM_IN37"},
	{Addr: 0xF226, Name: "FTDM_IN38"},
	{Addr: 0xF227, Name: "FTDM_IN39"},
	{Addr: 0xF228, Name: "FTDM_IN40"},
	{Addr: 0xF229, Name: "FTDM_IN41"},
	{Addr: 0xF22A, Name: "FTDM_IN42"},
	{Addr: 0xF22B, Name: "FTDM_IN43"},
	{Addr: 0xF22C, Name: "FTDM_IN44"},
	{Addr: 0xF22D, Name: "FTDM_IN45"},
	{Addr: 0xF22E, Name: "FTDM_IN46"},
	{Addr: 0xF22F, Name: "FTDM_IN47"},
	{Addr: 0xF230, Name: "FTDM_IN48"},
	{Addr: 0xF231, Name: "FTDM_IN49"},
	{Addr: 0xF232, Name: "FTDM_IN50"},
	{Addr: 0xF233, Name: "FTDM_IN51"},
	{Addr: 0xF234, Name: "FTDM_IN52"},
	{Addr: 0xF235, Name: "FTDM_IN53"},
	{Addr: 0xF236, Name: "FTDM_IN54"},
	{Addr: 0xF237, Name: "FTDM_IN55"},
	{Addr: 0xF238, Name: "FTDM_IN56"},
	{Addr: 0xF239, Name: "FTDM_IN57"},
	{Addr: 0xF23A, Name: "FTDM_IN58"},
	{Addr: 0xF23B, Name: "FTDM_IN59"},
	{Addr: 0xF23C, Name: "FTDM_IN60"},
	{Addr: 0xF23D, Name: "FTDM_IN61"},
	{Addr: 0xF23E, Name: "FTDM_IN62"},
	{Addr: 0xF23F, Name: "FTDM_IN63"},
	{Addr: 0xF240, Name: "FTDM_OUT0"},
	{Addr: 0xF241, Name: "FTDM_OUT1"},
	{Addr: 0xF242, Name: "FTDM_OUT2"},
	{Addr: 0xF243, Name: "FTDM_OUT3"},
	{Addr: 0xF244, Name: "FTDM_OUT4"},
	{Addr: 0xF245, Name: "FTDM_OUT5"},
	{Addr: 0xF246, Name: "FTDM_OUT6"},
	{Addr: 0xF247, Name: "FTDM_OUT7"},
	{Addr: 0xF248, Name: "FTDM_OUT8"},
	{Addr: 0xF249, Name: "FTDM_OUT9"},
	{Addr: 0xF24A, Name: "FTDM_OUT10"},
	{Addr: 0xF24B, Name: "FTDM_OUT11"},
	{Addr: 0xF24C, Name: "FTDM_OUT12"},
	{Addr: 0xF24D, Name: "FTDM_OUT13"},
	{Addr: 0xF24E, Name: "FTDM_OUT14"},
	{Addr: 0xF24F, Name: "FTDM_OUT15"},
	{Addr: 0xF250, Name: "FTDM_OUT16"},
	{Addr: 0xF251, Name: "FTDM_OUT17"},
	{Addr: 0xF252, Name: "FTDM_OUT18"},
	{Addr: 0xF253, Name: "FTDM_OUT19"},
	{Addr: 0xF254, Name: "FTDM_OUT20"},
	{Addr: 0xF255, Name: "FTDM_OUT21"},
	{Addr: 0xF256, Name: "FTDM_OUT22"},
	{Addr: 0xF257, Name: "FTDM_OUT23"},
	{Addr: 0xF258, Name: "FTDM_OUT24"},
	{Addr: 0xF259, Name: "FTDM_OUT25"},
	{Addr: 0xF25A, Name: "FTDM_OUT26"},
	{Addr: 0xF25B, Name: "FTDM_OUT27"},
	{Addr: 0xF25C, Name: "FTDM_OUT28"},
	{Addr: 0xF25D, Name: "FTDM_OUT29"},
	{Addr: 0xF25E, Name: "FTDM_OUT30"},
	{Addr: 0xF25F, Name: "FTDM_OUT31"},
	{Addr: 0xF260, Name: "FTDM_OUT32"},
	{Addr: 0xF261, Name: "FTDM_OUT33"},
	{Addr: 0xF262, Name: "FTDM_OUT34"},
	{Addr: 0xF263, Name: "FTDM_OUT35"},
	{Addr: 0xF264, Name: "FTDM_OUT36"},
	{Addr: 0xF265, Name: "FTDM_OUT37"},
	{Addr: 0xF266, Name: "FTDM_OUT38"},
	{Addr: 0xF267, Name: "FTDM_OUT39"},
	{Addr: 0xF268, Name: "FTDM_OUT40"},
	{Addr: 0xF269, Name: "FTDM_OUT41"},
	{Addr: 0xF26A, Name: "FTDM_OUT42"},
	{Addr: 0xF26B, Name: "FTDM_OUT43"},
	{Addr: 0xF26C, Name: "FTDM_OUT44"},
	{Addr: 0xF26D, Name: "FTDM_OUT45"},
	{Addr: 0xF26E, Name: "FTDM_OUT46"},
	{Addr: 0xF26F, Name: "FTDM_OUT47"},
	{Addr: 0xF270, Name: "FTDM_OUT48"},
	{Addr: 0xF271, Name: "FTDM_OUT49"},
	{Addr: 0xF272, Name: "FTDM_OUT50"},
	{Addr: 0xF273, Name: "FTDM_OUT51"},
	{Addr: 0xF274, Name: "FTDM_OUT52"},
	{Addr: 0xF275, Name: "FTDM_OUT53"},
	{Addr: 0xF276, Name: "FTDM_OUT54"},
	{Addr: 0xF277, Name: "FTDM_OUT55"},
	{Addr: 0xF278, Name: "FTDM_OUT56"},
	{Addr: 0xF279, Name: "FTDM_OUT57"},
	{Addr: 0xF27A, Name: "FTDM_OUT58"},
	{Addr: 0xF27B, Name: "FTDM_OUT59"},
	{Addr: 0xF27C, Name: "FTDM_OUT60"},
	{Addr: 0xF27D, Name: "FTDM_OUT61"},
	{Addr: 0xF27E, Name: "FTDM_OUT62"},
	{Addr: 0xF27F, Name: "FTDM_OUT63"},
	{Addr: 0xF300, Name: "MP_MODE0"},
	{Addr: 0xF301, Name: "MP_MODE1"},
	{Addr: 0xF302, Name: "MP_MODE2"},
	{Addr: 0xF303, Name: "MP_MODE3"},
	{Addr: 0xF304, Name: "MP_MODE4"},
	{Addr: 0xF305, Name: "MP_MODE5"},
	{Addr: 0xF306, Name: "MP_MODE6"},
	{Addr: 0xF307, Name: "MP_MODE7"},
	{Addr: 0xF308, Name: "MP_MODE8"},
	{Addr: 0xF309, Name: "MP_MODE9"},
	{Addr: 0xF30A, Name: "MP_MODE10"},
	{Addr: 0xF30B, Name: "MP_MODE11"},
	{Addr: 0xF30C, Name: "MP_MODE12"},
	{Addr: 0xF30D, Name: "MP_MODE13"},
	{Addr: 0xF310, Name: "MP_WRITE0"},
	{Addr: 0xF311, Name: "MP_WRITE1"},
	{Addr: 0xF312, Name: "MP_WRITE2"},
	{Addr: 0xF313, Name: "MP_WRITE3"},
	{Addr: 0xF314, Name: "MP_WRITE4"},
	{Addr: 0xF315, Name: "MP_WRITE5"},
	{Addr: 0xF316, Name: "MP_WRITE6"},
	{Addr: 0xF317, Name: "MP_WRITE7"},
	{Addr: 0xF318, Name: "MP_WRITE8"},
	{Addr: 0xF319, Name: "MP_WRITE9"},
	{Addr: 0xF31A, Name: "MP_WRITE10"},
	{Addr: 0xF31B, Name: "MP_WRITE11"},
	{Addr: 0xF31C, Name: "MP_WRITE12"},
	{Addr: 0xF31D, Name: "MP_WRITE13"},
	{Addr: 0xF320, Name: "MP_READ0", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF321, Name: "MP_READ1", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF322, Name: "MP_READ2", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF323, Name: "MP_READ3", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF324, Name: "MP_READ4", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF325, Name: "MP_READ5", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF326, Name: "MP_READ6", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF327, Name: "MP_READ7", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF328, Name: "MP_READ8", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF329, Name: "MP_READ9", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF32A, Name: "MP_READ10", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF32B, Name: "MP_READ11", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF32C, Name: "MP_READ12", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF32D, Name: "MP_READ13", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF400, Name: "HIBERNATE"},
	{Addr: 0xF401, Name: "START_PULSE", Reset: 0x0002},
	{Addr: 0xF402, Name: "START_CORE"},
	{Addr: 0xF403, Name: "KILL_CORE"},
	{Addr: 0xF404, Name: "START_ADDRESS"},
	{Addr: 0xF405, Name: "CORE_CTRL"},
	{Addr: 0xF410, Name: "PANIC_CLEAR"},
	{Addr: 0xF411, Name: "PANIC_PARITY_MASK", Reset: 0x0003},
	{Addr: 0xF412, Name: "PANIC_SOFTWARE_MASK"},
	{Addr: 0xF413, Name: "PANIC_WD_MASK"},
	{Addr: 0xF414, Name: "PANIC_STACK_MASK"},
	{Addr: 0xF415, Name: "PANIC_STATUS", Flags: hwio.ReadOnlyFlag, Synth: true},
	{Addr: 0xF420, Name: "DEBUG0"},
	{Addr: 0xF421, Name: "DEBUG1"},
	{Addr: 0xF422, Name: "DEBUG2"},
	{Addr: 0xF423, Name: "DEBUG3"},
	{Addr: 0xF424, Name: "DEBUG4"},
	{Addr: 0xF425, Name: "DEBUG5"},
	{Addr: 0xF426, Name: "DEBUG6"},
	{Addr: 0xF427, Name: "DEBUG7"},
	{Addr: 0xF430, Name: "SOFT_RESET"},
	{Addr: 0xF500, Name: "MIXER_GAIN0"},
	{Addr: 0xF501, Name: "MIXER_GAIN1"},
	{Addr: 0xF502, Name: "MIXER_GAIN2"},
	{Addr: 0xF503, Name: "MIXER_GAIN3"},
	{Addr: 0xF504, Name: "MIXER_GAIN4"},
	{Addr: 0xF505, Name: "MIXER_GAIN5"},
	{Addr: 0xF506, Name: "MIXER_GAIN6"},
	{Addr: 0xF507, Name: "MIXER_GAIN7"},
	{Addr: 0xF508, Name: "MIXER_GAIN8"},
	{Addr: 0xF509, Name: "MIXER_GAIN9"},
	{Addr: 0xF50A, Name: "MIXER_GAIN10"},
	{Addr: 0xF50B, Name: "MIXER_GAIN11"},
	{Addr: 0xF50C, Name: "MIXER_GAIN12"},
	{Addr: 0xF50D, Name: "MIXER_GAIN13"},
	{Addr: 0xF50E, Name: "MIXER_GAIN14"},
	{Addr: 0xF50F, Name: "MIXER_GAIN15"},
	{Addr: 0xF510, Name: "MIXER_GAIN16"},
	{Addr: 0xF511, Name: "MIXER_GAIN17"},
	{Addr: 0xF512, Name: "MIXER_GAIN18"},
	{Addr: 0xF513, Name: "MIXER_GAIN19"},
	{Addr: 0xF514, Name: "MIXER_GAIN20"},
	{Addr: 0xF515, Name: "MIXER_GAIN21"},
	{Addr: 0xF516, Name: "MIXER_GAIN22"},
	{Addr: 0xF517, Name: "MIXER_GAIN23"},
	{Addr: 0xF518, Name: "MIXER_GAIN24"},
	{Addr: 0xF519, Name: "MIXER_GAIN25"},
	{Addr: 0xF51A, Name: "MIXER_GAIN26"},
	{Addr: 0xF51B, Name: "MIXER_GAIN27"},
	{Addr: 0xF51C, Name: "MIXER_GAIN28"},
	{Addr: 0xF51D, Name: "MIXER_GAIN29"},
	{Addr: 0xF51E, Name: "MIXER_GAIN30"},
	{Addr: 0xF51F, Name: "MIXER_GAIN31"},
	{Addr: 0xF520, Name: "MIXER_GAIN32"},
	{Addr: 0xF521, Name: "MIXER_GAIN33"},
	{Addr: 0xF522, Name: "MIXER_GAIN34"},
	{Addr: 0xF523, Name: "MIXER_GAIN35"},
	{Addr: 0xF524, Name: "MIXER_GAIN36"},
	{Addr: 0xF525, Name: "MIXER_GAIN37"},
	{Addr: 0xF526, Name: "MIXER_GAIN38"},
	{Addr: 0xF527, Name: "MIXER_GAIN39"},
	{Addr: 0xF528, Name: "MIXER_GAIN40"},
	{Addr: 0xF529, Name: "MIXER_GAIN41"},
	{Addr: 0xF52A, Name: "MIXER_GAIN42"},
	{Addr: 0xF52B, Name: "MIXER_GAIN43"},
	{Addr: 0xF52C, Name: "MIXER_GAIN44"},
	{Addr: 0xF52D, Name: "MIXER_GAIN45"},
	{Addr: 0xF52E, Name: "MIXER_GAIN46"},
	{Addr: 0xF52F, Name: "MIXER_GAIN47"},
	{Addr: 0xF530, Name: "MIXER_GAIN48"},
	{Addr: 0xF531, Name: "MIXER_GAIN49"},
	{Addr: 0xF532, Name: "MIXER_GAIN50"},
	{Addr: 0xF533, Name: "MIXER_GAIN51"},
	{Addr: 0xF534, Name: "MIXER_GAIN52"},
	{Addr: 0xF535, Name: "MIXER_GAIN53"},
	{Addr: 0xF536, Name: "MIXER_GAIN54"},
	{Addr: 0xF537, Name: "MIXER_GAIN55"},
	{Addr: 0xF538, Name: "MIXER_GAIN56"},
	{Addr: 0xF539, Name: "MIXER_GAIN57"},
	{Addr: 0xF53A, Name: "MIXER_GAIN58"},
	{Addr: 0xF53B, Name: "MIXER_GAIN59"},
	{Addr: 0xF53C, Name: "MIXER_GAIN60"},
	{Addr: 0xF53D, Name: "MIXER_GAIN61"},
	{Addr: 0xF53E, Name: "MIXER_GAIN62"},
	{Addr: 0xF53F, Name: "MIXER_GAIN63"},
	{Addr: 0xF540, Name: "MIXER_GAIN64"},
	{Addr: 0xF541, Name: "MIXER_GAIN65"},
	{Addr: 0xF542, Name: "MIXER_GAIN66"},
	{Addr: 0xF543, Name: "MIXER_GAIN67"},
	{Addr: 0xF544, Name: "MIXER_GAIN68"},
	{Addr: 0xF545, Name: "MIXER_GAIN69"},
	{Addr: 0xF546, Name: "MIXER_GAIN70"},
	{Addr: 0xF547, Name: "MIXER_GAIN71"},
	{Addr: 0xF548, Name: "MIXER_GAIN72"},
	{Addr: 0xF549, Name: "MIXER_GAIN73"},
	{Addr: 0xF54A, Name: "MIXER_GAIN74"},
	{Addr: 0xF54B, Name: "MIXER_GAIN75"},
	{Addr: 0xF54C, Name: "MIXER_GAIN76"},
	{Addr: 0xF54D, Name: "MIXER_GAIN77"},
	{Addr: 0xF54E, Name: "MIXER_GAIN78"},
	{Addr: 0xF54F, Name: "MIXER_GAIN79"},
	{Addr: 0xF580, Name: "ROUTE_MATRIX0"},
	{Addr: 0xF581, Name: "ROUTE_MATRIX1"},
	{Addr: 0xF582, Name: "ROUTE_MATRIX2"},
	{Addr: 0xF583, Name: "ROUTE_MATRIX3"},
	{Addr: 0xF584, Name: "ROUTE_MATRIX4"},
	{Addr: 0xF585, Name: "ROUTE_MATRIX5"},
	{Addr: 0xF586, Name: "ROUTE_MATRIX6"},
	{Addr: 0xF587, Name: "ROUTE_MATRIX7"},
	{Addr: 0xF588, Name: "ROUTE_MATRIX8"},
	{Addr: 0xF589, Name: "ROUTE_MATRIX9"},
	{Addr: 0xF58A, Name: "ROUTE_MATRIX10"},
	{Addr: 0xF58B, Name: "ROUTE_MATRIX11"},
	{Addr: 0xF58C, Name: "ROUTE_MATRIX12"},
	{Addr: 0xF58D, Name: "ROUTE_MATRIX13"},
	{Addr: 0xF58E, Name: "ROUTE_MATRIX14"},
	{Addr: 0xF58F, Name: "ROUTE_MATRIX15"},
	{Addr: 0xF590, Name: "ROUTE_MATRIX16"},
	{Addr: 0xF591, Name: "ROUTE_MATRIX17"},
	{Addr: 0xF592, Name: "ROUTE_MATRIX18"},
	{Addr: 0xF593, Name: "ROUTE_MATRIX19"},
	{Addr: 0xF594, Name: "ROUTE_MATRIX20"},
	{Addr: 0xF595, Name: "ROUTE_MATRIX21"},
	{Addr: 0xF596, Name: "ROUTE_MATRIX22"},
	{Addr: 0xF597, Name: "ROUTE_MATRIX23"},
	{Addr: 0xF598, Name: "ROUTE_MATRIX24"},
	{Addr: 0xF599, Name: "ROUTE_MATRIX25"},
	{Addr: 0xF59A, Name: "ROUTE_MATRIX26"},
	{Addr: 0xF59B, Name: "ROUTE_MATRIX27"},
	{Addr: 0xF59C, Name: "ROUTE_MATRIX28"},
	{Addr: 0xF59D, Name: "ROUTE_MATRIX29"},
	{Addr: 0xF59E, Name: "ROUTE_MATRIX30"},
	{Addr: 0xF59F, Name: "ROUTE_MATRIX31"},
	{Addr: 0xF5A0, Name: "ROUTE_MATRIX32"},
	{Addr: 0xF5A1, Name: "ROUTE_MATRIX33"},
	{Addr: 0xF5A2, Name: "ROUTE_MATRIX34"},
	{Addr: 0xF5A3, Name: "ROUTE_MATRIX35"},
	{Addr: 0xF5A4, Name: "ROUTE_MATRIX36"},
	{Addr: 0xF5A5, Name: "ROUTE_MATRIX37"},
	{Addr: 0xF5A6, Name: "ROUTE_MATRIX38"},
	{Addr: 0xF5A7, Name: "ROUTE_MATRIX39"},
	{Addr: 0xF5A8, Name: "ROUTE_MATRIX40"},
	{Addr: 0xF5A9, Name: "ROUTE_MATRIX41"},
	{Addr: 0xF5AA, Name: "ROUTE_MATRIX42"},
	{Addr: 0xF5AB, Name: "ROUTE_MATRIX43"},
	{Addr: 0xF5AC, Name: "ROUTE_MATRIX44"},
	{Addr: 0xF5AD, Name: "ROUTE_MATRIX45"},
	{Addr: 0xF5AE, Name: "ROUTE_MATRIX46"},
	{Addr: 0xF5AF, Name: "ROUTE_MATRIX47"},
	{Addr: 0xF5B0, Name: "ROUTE_MATRIX48"},
	{Addr: 0xF5B1, Name: "ROUTE_MATRIX49"},
	{Addr: 0xF5B2, Name: "ROUTE_MATRIX50"},
	{Addr: 0xF5B3, Name: "ROUTE_MATRIX51"},
	{Addr: 0xF5B4, Name: "ROUTE_MATRIX52"},
	{Addr: 0xF5B5, Name: "ROUTE_MATRIX53"},
	{Addr: 0xF5B6, Name: "ROUTE_MATRIX54"},
	{Addr: 0xF5B7, Name: "ROUTE_MATRIX55"},
	{Addr: 0xF5B8, Name: "ROUTE_MATRIX56"},
	{Addr: 0xF5B9, Name: "ROUTE_MATRIX57"},
	{Addr: 0xF5BA, Name: "ROUTE_MATRIX58"},
	{Addr: 0xF5BB, Name: "ROUTE_MATRIX59"},
	{Addr: 0xF5BC, Name: "ROUTE_MATRIX60"},
	{Addr: 0xF5BD, Name: "ROUTE_MATRIX61"},
	{Addr: 0xF5BE, Name: "ROUTE_MATRIX62"},
	{Addr: 0xF5BF, Name: "ROUTE_MATRIX63"},
	{Addr: 0xF5C0, Name: "GPIO_DEBOUNCE0"},
	{Addr: 0xF5C1, Name: "GPIO_DEBOUNCE1"},
	{Addr: 0xF5C2, Name: "GPIO_DEBOUNCE2"},
	{Addr: 0xF5C3, Name: "GPIO_DEBOUNCE3"},
	{Addr: 0xF5C4, Name: "GPIO_DEBOUNCE4"},
	{Addr: 0xF5C5, Name: "GPIO_DEBOUNCE5"},
	{Addr: 0xF5C6, Name: "GPIO_DEBOUNCE6"},
	{Addr: 0xF5C7, Name: "GPIO_DEBOUNCE7"},
	{Addr: 0xF5C8, Name: "GPIO_DEBOUNCE8"},
	{Addr: 0xF5C9, Name: "GPIO_DEBOUNCE9"},
	{Addr: 0xF5CA, Name: "GPIO_DEBOUNCE10"},
	{Addr: 0xF5CB, Name: "GPIO_DEBOUNCE11"},
	{Addr: 0xF5CC, Name: "GPIO_DEBOUNCE12"},
	{Addr: 0xF5CD, Name: "GPIO_DEBOUNCE13"},
	{Addr: 0xF5CE, Name: "GPIO_DEBOUNCE14"},
	{Addr: 0xF5CF, Name: "GPIO_DEBOUNCE15"},
	{Addr: 0xF5D0, Name: "IRQ_MASK0"},
	{Addr: 0xF5D1, Name: "IRQ_MASK1"},
	{Addr: 0xF5D2, Name: "IRQ_STATUS", Flags: hwio.ReadOnlyFlag, Synth: true},
}
