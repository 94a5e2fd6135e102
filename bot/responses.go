package bot

// Response text is a compatibility surface: the lines below, including their
// double spaces and the mIRC control codes embedded by format.go, are what
// existing channel regulars and log scrapers expect.

const (
	helpGeneral      = "[Help] Available commands: !add !yes !maybe !no !unsign !list !info !update !result !updateresult !delresult !del !undel !rename !alias !delalias - Use !help <command> for more information."
	helpUnknown      = "[Help] Unknown command.  Use !help for a list of commands."
	helpAdd          = "[Help] !add <dd/mm/yy> <hh:mm> <gametype> <team> [comment] - Add a new match.  AMS times!"
	helpSignup       = "[Help] !(yes|maybe|no|unsign) <id> [name] - Set yourself as available, maybe, unavailable or unsign for a match.  If you include a name, that name will be used instead of your IRC nick. For a list of ids, use !list or rejoin the channel."
	helpList         = "[Help] !list [unsigned] [name] - List the upcoming matches.  If you include 'unsigned', it will only show the matches you aren't signed up for.  If you include a name, that name will be used instead of your IRC nick to check for availability."
	helpInfo         = "[Help] !info <id> [name] - Get information about a match.  Includes lists of players that are signed up.  If you include a name, that name will be used instead of your IRC nick to check for availability."
	helpUpdate       = "[Help] !update <id> <property> [value] - Update the information in a match.  You can update: date, team, gametype and comment."
	helpResult       = "[Help] !result <id> <map> <ourteam> <ourscore> <theirscore> [comment] - Add a map result for a match.  Repeat once for each map."
	helpUpdateResult = "[Help] !updateresult <matchid> <resultid> <property> [value]- Update the information in a result.  You can update: map, team, ourscore, theirscore and comment."
	helpDelResult    = "[Help] !delresult <matchid> <resultid> - Permanently delete this result from a match."
	helpDel          = "[Help] !del <id> - Remove a match from the list.  Add results before removing.  Matches removed without results will not be saved!"
	helpUndel        = "[Help] !undel <id> - Restores a deleted match to the active list."
	helpRename       = "[Help] !rename <id> <from> <to> - Changes the name of a somebody already signed up to a match.  Use if you signed up with the wrong name by mistake."
	helpAlias        = "[Help] !alias <master> <slave> - Adds an alias to the bot.  Aliases will automatically change your name from your current irc nick to another name."
	helpDelAlias     = "[Help] !delalias <slave> - Removes an alias to the bot.  Aliases will automatically change your name from your current irc nick to another name."
)

const (
	errNoMatch               = "[Error] Match id doesn't exist."
	errInvalidResultID       = "[Error] Invalid result id."
	errNoResult              = "[Error] Result id doesn't exist."
	errDateParse             = "[Error] Unable to parse date.  Please use the following format: <dd/mm/yy> <hh:mm>."
	errDateValue             = "[Error] Unable to instantiate date."
	errUnknownMatchProperty  = "[Error] Unknown match property."
	errUnknownResultProperty = "[Error] Unknown result property."
	errOurScoreNumeric       = "[Error] Our score must be numeric."
	errTheirScoreNumeric     = "[Error] Their score must be numeric."
	errNotSignedUp           = "[Error] You are not signed up for that match."
	errRenameNotFound        = "[Error] That person is not signed up for that match."
	errNoAlias               = "[Error] Alias does not exist."
)

const msgNoMatches = "[Info] No matches."
