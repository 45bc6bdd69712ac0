package alphabet

// emojiRunes is the emoji256 alphabet. Index is the byte value.
//
// Entries must stay in strictly increasing code point order: Table.Lookup
// binary-searches this array, and newTable rejects an unsorted literal.
var emojiRunes = [Size]rune{
	'🌀', '🌈', '🌊', '🌙', '🌟', '🌠', '🌰', '🌱', // 0x00
	'🌴', '🌵', '🌷', '🌸', '🌹', '🌺', '🌻', '🌼', // 0x08
	'🌿', '🍀', '🍁', '🍂', '🍃', '🍄', '🍅', '🍆', // 0x10
	'🍇', '🍈', '🍉', '🍊', '🍋', '🍌', '🍍', '🍎', // 0x18
	'🍻', '🍼', '🎀', '🎁', '🎂', '🎃', '🎄', '🎅', // 0x20
	'🎆', '🎇', '🎈', '🎉', '🎊', '🎋', '🎌', '🎍', // 0x28
	'🎎', '🎏', '🎐', '🎑', '🎒', '🎓', '🎠', '🎡', // 0x30
	'🎢', '🎣', '🎤', '🎥', '🎦', '🎧', '🎨', '🎵', // 0x38
	'🎶', '🎸', '🎺', '🏀', '🏆', '🏈', '🐌', '🐍', // 0x40
	'👊', '👋', '👌', '👍', '👎', '👏', '👐', '👑', // 0x48
	'👒', '👓', '👔', '👕', '👖', '👗', '👘', '👙', // 0x50
	'👚', '👻', '👽', '👾', '💀', '💄', '💎', '💐', // 0x58
	'💓', '💗', '💘', '💙', '💚', '💛', '💜', '💝', // 0x60
	'💞', '💟', '💡', '💢', '💣', '💤', '💥', '💦', // 0x68
	'💧', '💨', '💩', '💪', '💫', '💯', '💰', '💸', // 0x70
	'💻', '💼', '💽', '💾', '💿', '📀', '📁', '📂', // 0x78
	'📃', '📄', '📚', '📛', '📜', '📝', '📞', '📟', // 0x80
	'📠', '📡', '📢', '📣', '📤', '📥', '📦', '📱', // 0x88
	'📲', '📳', '📴', '📵', '📶', '📷', '📸', '📹', // 0x90
	'📺', '📻', '📼', '🔋', '🔌', '🔍', '🔎', '🔑', // 0x98
	'🔒', '🔔', '🔥', '🔦', '🔧', '🔨', '🔩', '🔪', // 0xA0
	'🔫', '🔬', '🔭', '🔮', '😀', '😁', '😂', '😃', // 0xA8
	'😄', '😅', '😆', '😇', '😈', '😉', '😊', '😋', // 0xB0
	'😌', '😍', '😎', '😏', '😐', '😑', '😒', '😓', // 0xB8
	'😔', '😕', '😖', '😗', '😘', '😙', '😚', '😛', // 0xC0
	'😜', '😝', '😞', '😟', '😠', '😡', '😢', '😣', // 0xC8
	'😤', '😥', '😦', '😧', '😨', '😩', '😪', '😫', // 0xD0
	'😬', '😭', '😮', '😯', '😰', '😱', '😲', '😳', // 0xD8
	'😴', '😵', '😶', '😷', '😸', '😹', '😺', '😻', // 0xE0
	'😼', '😽', '😾', '😿', '🙀', '🙁', '🙂', '🙃', // 0xE8
	'🙄', '🙅', '🙆', '🙇', '🙈', '🙉', '🙊', '🙋', // 0xF0
	'🙌', '🙍', '🙎', '🙏', '🚀', '🚁', '🚂', '🚃', // 0xF8
}
